package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophtalk/internal/client/client"
)

func printMessages(msgs []client.Message) {
	if len(msgs) == 0 {
		printlnFn("No messages.")
		return
	}
	for i, m := range msgs {
		printlnFn(fmt.Sprintf("[%d] %s: %s", i, m.Sender, m.Body))
	}
}

// Send prompts for a recipient and a message body and delivers it under
// the logged-in username.
func (a *App) Send(ctx context.Context) error {
	user := a.currentUser()
	if user == "" {
		printlnFn("Log in first.")
		return nil
	}

	recipient, err := getSimpleText(a.reader, "Enter recipient", os.Stdout)
	if err != nil {
		return err
	}

	body, err := GetMultiline(a.reader, "Enter message", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.SendMessage(ctx, user, recipient, body); err != nil {
		log.Printf("Send unsuccessful: %s", err.Error())
		return err
	}

	printlnFn("Message sent.")
	return nil
}

// Unread pops up to the requested number of unread messages, oldest first.
// Whatever is shown moves to the read sequence on the server.
func (a *App) Unread(ctx context.Context) error {
	user := a.currentUser()
	if user == "" {
		printlnFn("Log in first.")
		return nil
	}

	text, err := getSimpleText(a.reader, "How many messages?", os.Stdout)
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		printlnFn("Enter a number.")
		return nil
	}

	msgs, err := a.client.ReadUnread(ctx, user, count)
	if err != nil {
		log.Printf("Read unsuccessful: %s", err.Error())
		return err
	}

	printMessages(msgs)
	return nil
}

// List shows the read sequence with the indices delmsg accepts.
func (a *App) List(ctx context.Context) error {
	user := a.currentUser()
	if user == "" {
		printlnFn("Log in first.")
		return nil
	}

	msgs, err := a.client.ReadAll(ctx, user)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return err
	}

	printMessages(msgs)
	return nil
}

// Peek shows the unread backlog without marking anything read.
func (a *App) Peek(ctx context.Context) error {
	user := a.currentUser()
	if user == "" {
		printlnFn("Log in first.")
		return nil
	}

	msgs, err := a.client.GetUnread(ctx, user)
	if err != nil {
		log.Printf("Peek unsuccessful: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%d unread message(s)", len(msgs)))
	for _, m := range msgs {
		printlnFn("  from " + m.Sender)
	}
	return nil
}

// DeleteMessage removes one read message by its list index.
func (a *App) DeleteMessage(ctx context.Context) error {
	user := a.currentUser()
	if user == "" {
		printlnFn("Log in first.")
		return nil
	}

	text, err := getSimpleText(a.reader, "Enter message index (see 'list')", os.Stdout)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		printlnFn("Enter a number.")
		return nil
	}

	if err := a.client.DeleteMessage(ctx, user, index); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return err
	}

	printlnFn("Message deleted.")
	return nil
}

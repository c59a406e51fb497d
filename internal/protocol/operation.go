package protocol

// Operation is a two-character code identifying one protocol operation.
// The same code space carries the two response outcomes, so a response
// envelope's operation field is always OpSuccess or OpFailure.
type Operation string

const (
	OpSuccess Operation = "00"
	OpFailure Operation = "01"

	OpSendMessage   Operation = "10"
	OpReadUnread    Operation = "11"
	OpCountUnread   Operation = "13"
	OpLogin         Operation = "14"
	OpReadAll       Operation = "15"
	OpListAccounts  Operation = "16"
	OpDeleteMessage Operation = "17"
	OpDeleteAccount Operation = "18"
)

// opNames maps codes to human-readable names for logging.
var opNames = map[Operation]string{
	OpSuccess:       "success",
	OpFailure:       "failure",
	OpSendMessage:   "send_message",
	OpReadUnread:    "read_unread",
	OpCountUnread:   "count_unread",
	OpLogin:         "login",
	OpReadAll:       "read_all",
	OpListAccounts:  "list_accounts",
	OpDeleteMessage: "delete_message",
	OpDeleteAccount: "delete_account",
}

// Valid reports whether op is one of the registered operation codes.
func (op Operation) Valid() bool {
	_, ok := opNames[op]
	return ok
}

// Name returns a readable name for the operation, or the raw code if the
// operation is not registered.
func (op Operation) Name() string {
	if n, ok := opNames[op]; ok {
		return n
	}
	return string(op)
}

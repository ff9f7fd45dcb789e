package errors

var (
	ErrChatNotFound       = NotFound("chat not found")
	ErrNotChatMember      = Forbidden("you are not a member of this chat")
	ErrSelfChat           = InvalidArg("cannot open a private chat with yourself")
	ErrEmptyMessage       = InvalidArg("message text cannot be empty")
	ErrNotPrivateChat     = FailedPrecondition("only private chats can be left")
	ErrGeneralChatMissing = NotFound("general chat not found")
)

func ErrChatCreationFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create chat", cause)
}

package response

// The admin front-end consumes the original API's flat bodies: errors are
// {"error": "..."} and confirmations are {"message": "..."}.

// ErrorBody wraps a client-visible error message.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody wraps a confirmation message.
type MessageBody struct {
	Message string `json:"message"`
}

// FileBody is a confirmation that also carries the affected file URL.
type FileBody struct {
	Message string `json:"message"`
	FileURL string `json:"fileUrl"`
}

func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

func Message(msg string) MessageBody {
	return MessageBody{Message: msg}
}

func File(msg, fileURL string) FileBody {
	return FileBody{Message: msg, FileURL: fileURL}
}

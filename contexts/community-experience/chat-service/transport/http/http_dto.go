package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StartThreadRequest struct {
	WithUserID string `json:"with_user_id"`
}

type ThreadDTO struct {
	ThreadID       string   `json:"thread_id"`
	Kind           string   `json:"kind"`
	ParticipantIDs []string `json:"participant_ids"`
	CreatedAt      string   `json:"created_at"`
}

type ThreadResponse struct {
	Thread ThreadDTO `json:"thread"`
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

type MessageDTO struct {
	MessageID   string `json:"message_id"`
	ThreadID    string `json:"thread_id"`
	SenderID    string `json:"sender_id"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	CreatedAt   string `json:"created_at"`
}

type MessageResponse struct {
	Message MessageDTO `json:"message"`
}

type ListMessagesResponse struct {
	Items []MessageDTO `json:"items"`
}

package types

// ChatRole identifies who produced a chat turn
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatTurn is one message in an assistant conversation
type ChatTurn struct {
	Role ChatRole `json:"role" binding:"required,oneof=user model"`
	Text string   `json:"text"`
	// Failed marks a model turn that carries an apology instead of an answer
	Failed bool `json:"failed,omitempty"`
}

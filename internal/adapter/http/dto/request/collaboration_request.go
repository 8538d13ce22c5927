package request

type InviteUsersRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1,dive,required"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateNotificationRequest struct {
	Type        string `json:"type" binding:"required,oneof=obra message budget visit concurso system"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type InvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type BulkInvitationRequest struct {
	Emails []string `json:"emails" binding:"required,min=1"`
}

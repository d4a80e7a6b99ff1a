package model

// StartSessionReq is the payload for creating a new interview session.
// The user id comes from the external identity provider the front end
// authenticates against; it is only used for the anonymized usage log.
type StartSessionReq struct {
	UserID        string `json:"user_id"`
	Industry      string `json:"industry" binding:"required"`
	Duration      int    `json:"duration" binding:"required"`
	InterviewType string `json:"interview_type" binding:"required"`
}

// SubmitAnswerReq carries one answer to the currently open question.
type SubmitAnswerReq struct {
	Answer string `json:"answer"`
}

package model

// ProblemDetail is the error body returned by the local endpoint.
type ProblemDetail struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// NewProblemDetail builds a problem body for the given status code.
func NewProblemDetail(title, detail string, status int) ProblemDetail {
	return ProblemDetail{Title: title, Detail: detail, Status: status}
}

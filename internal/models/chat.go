package models

type AskRequest struct {
	UserInput string `json:"userInput"`
	UserName  string `json:"userName"`
}

type AskResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

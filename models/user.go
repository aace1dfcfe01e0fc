package models

// User is the profile of a signed-in customer. There is no credential
// storage; authentication is mocked and any well-formed input succeeds.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

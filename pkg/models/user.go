package models

import "github.com/hashicorp-forge/soundboard/pkg/snowflake"

// User is the public part of a user account.
type User struct {
	ID            snowflake.UserID `json:"id"`
	Username      string           `json:"username"`
	Discriminator string           `json:"discriminator,omitempty"`
	GlobalName    *string          `json:"global_name,omitempty"`
	Avatar        *string          `json:"avatar,omitempty"`
	Bot           bool             `json:"bot,omitempty"`
}

// DisplayName returns the global name when set and the username otherwise.
func (u *User) DisplayName() string {
	if u.GlobalName != nil && *u.GlobalName != "" {
		return *u.GlobalName
	}
	return u.Username
}

// Application is the partial application object embedded in invites.
type Application struct {
	ID          snowflake.ApplicationID `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
}

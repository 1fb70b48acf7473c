// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/KingLex25/innovationhub/validation"

// Response types

type ErrorResponse struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of a user; the password hash never leaves the server
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}

type AboutResponse struct {
	*About
	Features []AboutFeature `json:"features"`
}

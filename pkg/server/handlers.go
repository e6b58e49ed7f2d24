package server

import (
	"Pinboard/handler"
)

type Handlers struct {
	User         *handler.User
	Follow       *handler.Follow
	Pin          *handler.Pin
	Board        *handler.Board
	Conversation *handler.Conversation
	Notification *handler.Notification
}

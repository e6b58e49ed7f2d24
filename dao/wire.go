//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewPinDAO,
	NewTagDAO,
	NewPinTagDAO,
	NewPinLikeDAO,
	NewCommentDAO,
	NewBoardDAO,
	NewBoardPinDAO,
	NewUserFollowDAO,
	NewLinkedAccountDAO,
	NewConversationDAO,
	NewParticipantDAO,
	NewMessageDAO,
	NewNotificationDAO,
)

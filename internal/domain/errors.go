package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgLeaderNotFound      = "leader not found"
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgQuestNotCollectable = "quest is not awaiting collection"
	ErrMsgTeamNotFound        = "team not found"
	ErrMsgTeamUnavailable     = "team is not available"
	ErrMsgCharacterNotFound   = "character not found"
	ErrMsgCharacterBusy       = "character is not available"
	ErrMsgCharacterInTeam     = "character already belongs to a team"
	ErrMsgTeamSize            = "team must have between 2 and 8 members"
	ErrMsgRecruitNotFound     = "recruit not found"
	ErrMsgGuildFull           = "guild roster is full"
	ErrMsgInsufficientGold    = "insufficient gold"
	ErrMsgBuildingNotFound    = "building not found"
	ErrMsgBuildingMaxLevel    = "building is at max level"
	ErrMsgBuildingUpgrading   = "building is already upgrading"
	ErrMsgNoSave              = "no save present"
	ErrMsgInvalidInput        = "invalid input"
)

// Common domain errors. Wrap with fmt.Errorf("%w: ...") for context.
var (
	ErrLeaderNotFound      = errors.New(ErrMsgLeaderNotFound)
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotCollectable = errors.New(ErrMsgQuestNotCollectable)
	ErrTeamNotFound        = errors.New(ErrMsgTeamNotFound)
	ErrTeamUnavailable     = errors.New(ErrMsgTeamUnavailable)
	ErrCharacterNotFound   = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterBusy       = errors.New(ErrMsgCharacterBusy)
	ErrCharacterInTeam     = errors.New(ErrMsgCharacterInTeam)
	ErrTeamSize            = errors.New(ErrMsgTeamSize)
	ErrRecruitNotFound     = errors.New(ErrMsgRecruitNotFound)
	ErrGuildFull           = errors.New(ErrMsgGuildFull)
	ErrInsufficientGold    = errors.New(ErrMsgInsufficientGold)
	ErrBuildingNotFound    = errors.New(ErrMsgBuildingNotFound)
	ErrBuildingMaxLevel    = errors.New(ErrMsgBuildingMaxLevel)
	ErrBuildingUpgrading   = errors.New(ErrMsgBuildingUpgrading)
	ErrNoSave              = errors.New(ErrMsgNoSave)
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
)

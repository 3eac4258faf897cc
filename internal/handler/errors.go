package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Game lifecycle error messages
	ErrMsgNewGameFailed      = "Failed to create game"
	ErrMsgLoadGameFailed     = "Failed to load game"
	ErrMsgSaveGameFailed     = "Failed to save game"
	ErrMsgDeleteGameFailed   = "Failed to delete save"
	ErrMsgAdvanceCycleFailed = "Failed to advance cycle"

	// Quest operation error messages
	ErrMsgAssignQuestFailed   = "Failed to assign quest"
	ErrMsgCollectRewardFailed = "Failed to collect reward"

	// Team operation error messages
	ErrMsgCreateTeamFailed  = "Failed to create team"
	ErrMsgDisbandTeamFailed = "Failed to disband team"

	// Building operation error messages
	ErrMsgUpgradeBuildingFailed = "Failed to start upgrade"

	// Recruitment error messages
	ErrMsgHireRecruitFailed = "Failed to hire recruit"

	// Parameter validation error messages
	ErrMsgInvalidTeamID     = "Invalid team ID"
	ErrMsgInvalidBuildingID = "Invalid building ID"
	ErrMsgInvalidRecruitIdx = "Invalid recruit index"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgGameCreatedSuccess     = "New game created"
	MsgCycleAdvancedSuccess   = "Cycle advanced"
	MsgQuestAssignedSuccess   = "Quest assigned"
	MsgRewardCollectedSuccess = "Reward collected"
	MsgTeamCreatedSuccess     = "Team created"
	MsgTeamDisbandedSuccess   = "Team disbanded"
	MsgUpgradeStartedSuccess  = "Upgrade started"
	MsgRecruitHiredSuccess    = "Recruit hired"
	MsgSaveDeletedSuccess     = "Save deleted"
)

package models

// LeagueStatus tracks the lifecycle of a league season
type LeagueStatus string

const (
	LeagueStatusPending   LeagueStatus = "pending"
	LeagueStatusActive    LeagueStatus = "active"
	LeagueStatusCompleted LeagueStatus = "completed"
	LeagueStatusCancelled LeagueStatus = "cancelled"
)

// LeagueRole represents a user's role within a league
type LeagueRole string

const (
	LeagueRoleManager LeagueRole = "manager"
	LeagueRolePlayer  LeagueRole = "player"
)

// TeamRole represents a user's role within a team roster
type TeamRole string

const (
	TeamRoleCaptain TeamRole = "captain"
	TeamRolePlayer  TeamRole = "player"
)

// MatchStatus tracks the lifecycle of a match
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

// SubmissionStatus tracks the adjudication state of a match result submission
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// NotificationType categorizes notifications delivered to users
type NotificationType string

const (
	NotificationTypeMatchConflict  NotificationType = "match_conflict"
	NotificationTypeMatchFinalized NotificationType = "match_finalized"
	NotificationTypeGeneric        NotificationType = "generic"
)

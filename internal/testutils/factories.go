package testutils

import (
	"fmt"
	"time"

	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email derived from the ID to avoid collisions across tests
		Email:       fmt.Sprintf("player-%s@test.com", id.String()[:8]),
		FirstName:   "Jordan",
		LastName:    "Player",
		PhoneNumber: "+1-555-0123",
		IsActive:    true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets a custom first and last name for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// LeagueFactory provides methods to create test League data
type LeagueFactory struct{}

// NewLeagueFactory creates a new LeagueFactory
func NewLeagueFactory() *LeagueFactory {
	return &LeagueFactory{}
}

// Create creates a test League with default values
func (f *LeagueFactory) Create() *models.League {
	id := uuid.New()
	return &models.League{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test League " + id.String()[:8],
		Season:      "2026",
		Description: "A test league",
		Status:      models.LeagueStatusActive,
	}
}

// WithName sets a custom name for the league
func (f *LeagueFactory) WithName(name string) *models.League {
	league := f.Create()
	league.Name = name
	return league
}

// WithSeason sets a custom season for the league
func (f *LeagueFactory) WithSeason(season string) *models.League {
	league := f.Create()
	league.Season = season
	return league
}

// WithStatus sets a custom status for the league
func (f *LeagueFactory) WithStatus(status models.LeagueStatus) *models.League {
	league := f.Create()
	league.Status = status
	return league
}

// LeagueMemberFactory provides methods to create test LeagueMember data
type LeagueMemberFactory struct{}

// NewLeagueMemberFactory creates a new LeagueMemberFactory
func NewLeagueMemberFactory() *LeagueMemberFactory {
	return &LeagueMemberFactory{}
}

// Create creates a test LeagueMember with default values
func (f *LeagueMemberFactory) Create() *models.LeagueMember {
	return &models.LeagueMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeagueID: uuid.New(),
		UserID:   uuid.New(),
		Role:     models.LeagueRolePlayer,
	}
}

// Manager creates a league member with the manager role
func (f *LeagueMemberFactory) Manager(leagueID, userID uuid.UUID) *models.LeagueMember {
	member := f.Create()
	member.LeagueID = leagueID
	member.UserID = userID
	member.Role = models.LeagueRoleManager
	return member
}

// Player creates a league member with the player role
func (f *LeagueMemberFactory) Player(leagueID, userID uuid.UUID) *models.LeagueMember {
	member := f.Create()
	member.LeagueID = leagueID
	member.UserID = userID
	return member
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeagueID: uuid.New(),
		Name:     "Test Team " + id.String()[:8],
	}
}

// WithLeague sets the league ID for the team
func (f *TeamFactory) WithLeague(leagueID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeagueID = leagueID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   uuid.New(),
		UserID:   uuid.New(),
		Role:     models.TeamRolePlayer,
		IsActive: true,
	}
}

// OnTeam creates an active team member on the given team for the given user
func (f *TeamMemberFactory) OnTeam(teamID, userID uuid.UUID) *models.TeamMember {
	member := f.Create()
	member.TeamID = teamID
	member.UserID = userID
	return member
}

// Inactive creates a team member whose roster spot is inactive
func (f *TeamMemberFactory) Inactive(teamID, userID uuid.UUID) *models.TeamMember {
	member := f.OnTeam(teamID, userID)
	member.IsActive = false
	return member
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Test Field",
		Address:    "123 Test Street",
		City:       "Testville",
		FieldCount: 2,
	}
}

// WithName sets a custom name for the location
func (f *LocationFactory) WithName(name string) *models.Location {
	location := f.Create()
	location.Name = name
	return location
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// Create creates a test Match with default values
func (f *MatchFactory) Create() *models.Match {
	return &models.Match{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeagueID:    uuid.New(),
		HomeTeamID:  uuid.New(),
		AwayTeamID:  uuid.New(),
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      models.MatchStatusScheduled,
	}
}

// Between creates a match between the two teams in the given league
func (f *MatchFactory) Between(leagueID, homeTeamID, awayTeamID uuid.UUID) *models.Match {
	match := f.Create()
	match.LeagueID = leagueID
	match.HomeTeamID = homeTeamID
	match.AwayTeamID = awayTeamID
	return match
}

// WithStatus sets a custom status for the match
func (f *MatchFactory) WithStatus(status models.MatchStatus) *models.Match {
	match := f.Create()
	match.Status = status
	return match
}

// SubmissionFactory provides methods to create test MatchResultSubmission data
type SubmissionFactory struct{}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{}
}

// Create creates a test MatchResultSubmission with default values
func (f *SubmissionFactory) Create() *models.MatchResultSubmission {
	return &models.MatchResultSubmission{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MatchID:          uuid.New(),
		TeamID:           uuid.New(),
		SubmittingUserID: uuid.New(),
		HomeScore:        2,
		AwayScore:        1,
		Status:           models.SubmissionStatusPending,
	}
}

// ForMatch creates a submission for the given match from the given team
func (f *SubmissionFactory) ForMatch(matchID, teamID, userID uuid.UUID) *models.MatchResultSubmission {
	submission := f.Create()
	submission.MatchID = matchID
	submission.TeamID = teamID
	submission.SubmittingUserID = userID
	return submission
}

// WithScores sets the claimed scores on the submission
func (f *SubmissionFactory) WithScores(matchID, teamID, userID uuid.UUID, home, away int) *models.MatchResultSubmission {
	submission := f.ForMatch(matchID, teamID, userID)
	submission.HomeScore = home
	submission.AwayScore = away
	return submission
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a test Notification with default values
func (f *NotificationFactory) Create() *models.Notification {
	return &models.Notification{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:  uuid.New(),
		Type:    models.NotificationTypeGeneric,
		Title:   "Test Notification",
		Message: "A test notification",
		IsRead:  false,
	}
}

// ForUser creates a notification addressed to the given user
func (f *NotificationFactory) ForUser(userID uuid.UUID) *models.Notification {
	notification := f.Create()
	notification.UserID = userID
	return notification
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	League       *LeagueFactory
	LeagueMember *LeagueMemberFactory
	Team         *TeamFactory
	TeamMember   *TeamMemberFactory
	Location     *LocationFactory
	Match        *MatchFactory
	Submission   *SubmissionFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		League:       NewLeagueFactory(),
		LeagueMember: NewLeagueMemberFactory(),
		Team:         NewTeamFactory(),
		TeamMember:   NewTeamMemberFactory(),
		Location:     NewLocationFactory(),
		Match:        NewMatchFactory(),
		Submission:   NewSubmissionFactory(),
		Notification: NewNotificationFactory(),
	}
}

// CreateLeagueFixture creates a league with two teams, a rostered player on
// each, and a manager, ready for match scheduling tests
func (fs *FactorySet) CreateLeagueFixture() (*models.League, *models.Team, *models.Team, *models.User, *models.User, *models.User) {
	league := fs.League.Create()

	homeTeam := fs.Team.WithLeague(league.ID)
	awayTeam := fs.Team.WithLeague(league.ID)

	homePlayer := fs.User.Create()
	awayPlayer := fs.User.Create()
	manager := fs.User.Create()

	return league, homeTeam, awayTeam, homePlayer, awayPlayer, manager
}

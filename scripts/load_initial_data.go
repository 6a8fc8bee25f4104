package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"league-portal-backend/internal/config"
	"league-portal-backend/internal/database"
	"league-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email       string `yaml:"email"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type LeagueData struct {
	Name        string `yaml:"name"`
	Season      string `yaml:"season"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status"`
	// Managers are referenced by user email
	Managers []string `yaml:"managers,omitempty"`
}

type TeamData struct {
	Name       string `yaml:"name"`
	LeagueName string `yaml:"league_name"`
	// Roster entries are referenced by user email
	Captain string   `yaml:"captain,omitempty"`
	Players []string `yaml:"players,omitempty"`
}

type LocationData struct {
	Name       string `yaml:"name"`
	Address    string `yaml:"address,omitempty"`
	City       string `yaml:"city,omitempty"`
	FieldCount int    `yaml:"field_count"`
}

type MatchData struct {
	LeagueName   string    `yaml:"league_name"`
	HomeTeamName string    `yaml:"home_team_name"`
	AwayTeamName string    `yaml:"away_team_name"`
	LocationName string    `yaml:"location_name,omitempty"`
	ScheduledAt  time.Time `yaml:"scheduled_at"`
	Status       string    `yaml:"status,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type LeaguesFile struct {
	Leagues []LeagueData `yaml:"leagues"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type LocationsFile struct {
	Locations []LocationData `yaml:"locations"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	leagues, err := loadLeagues(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leagues: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	locations, err := loadLocations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}

	matches, err := loadMatches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	// Create users first; everything else references them by email
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create leagues and their manager memberships
	leagueMap := make(map[string]*models.League)
	leagueCreated := 0
	for _, leagueData := range leagues {
		league, created, err := createLeague(db, leagueData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create league %s: %w", leagueData.Name, err)
		}
		leagueMap[leagueData.Name] = league
		if created {
			leagueCreated++
		}
	}
	log.Printf("📋 Leagues: %d created, %d total", leagueCreated, len(leagues))

	// Create teams and rosters
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, leagueMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create locations
	locationMap := make(map[string]*models.Location)
	locationCreated := 0
	for _, locationData := range locations {
		location, created, err := createLocation(db, locationData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create location %s: %v", locationData.Name, err)
			continue
		}
		locationMap[locationData.Name] = location
		if created {
			locationCreated++
		}
	}
	log.Printf("📋 Locations: %d created, %d total", locationCreated, len(locations))

	// Create matches last; they reference leagues, teams and locations
	matchCreated := 0
	for _, matchData := range matches {
		_, created, err := createMatch(db, matchData, leagueMap, teamMap, locationMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create match %s vs %s: %v", matchData.HomeTeamName, matchData.AwayTeamName, err)
			continue
		}
		if created {
			matchCreated++
		}
	}
	log.Printf("📋 Matches: %d created, %d total", matchCreated, len(matches))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := walkYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

func loadLeagues(dataDir string) ([]LeagueData, error) {
	var allLeagues []LeagueData

	err := walkYAMLFiles(dataDir, "leagues", func(data []byte) error {
		var file LeaguesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allLeagues = append(allLeagues, file.Leagues...)
		return nil
	})

	return allLeagues, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := walkYAMLFiles(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allTeams = append(allTeams, file.Teams...)
		return nil
	})

	return allTeams, err
}

func loadLocations(dataDir string) ([]LocationData, error) {
	var allLocations []LocationData

	err := walkYAMLFiles(dataDir, "locations", func(data []byte) error {
		var file LocationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allLocations = append(allLocations, file.Locations...)
		return nil
	})

	return allLocations, err
}

func loadMatches(dataDir string) ([]MatchData, error) {
	var allMatches []MatchData

	err := walkYAMLFiles(dataDir, "matches", func(data []byte) error {
		var file MatchesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allMatches = append(allMatches, file.Matches...)
		return nil
	})

	return allMatches, err
}

// walkYAMLFiles visits every .yaml file under dataDir whose path contains the
// given marker and hands its contents to parse
func walkYAMLFiles(dataDir, marker string, parse func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, marker) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return parse(data)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Email:       userData.Email,
				FirstName:   userData.FirstName,
				LastName:    userData.LastName,
				PhoneNumber: userData.PhoneNumber,
				IsActive:    userData.IsActive,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createLeague(db *gorm.DB, leagueData LeagueData, userMap map[string]*models.User) (*models.League, bool, error) {
	var league models.League
	created := false
	if err := db.Where("name = ? AND season = ?", leagueData.Name, leagueData.Season).First(&league).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.LeagueStatusActive
			if leagueData.Status != "" {
				status = models.LeagueStatus(leagueData.Status)
			}

			league = models.League{
				Name:        leagueData.Name,
				Season:      leagueData.Season,
				Description: leagueData.Description,
				Status:      status,
			}

			if err := db.Create(&league).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create league: %w", err)
			}
			created = true
		} else {
			return nil, false, fmt.Errorf("failed to query league: %w", err)
		}
	}

	for _, email := range leagueData.Managers {
		user := userMap[email]
		if user == nil {
			log.Printf("⚠️  Warning: manager %s not found for league %s", email, leagueData.Name)
			continue
		}
		membership := models.LeagueMember{
			LeagueID: league.ID,
			UserID:   user.ID,
			Role:     models.LeagueRoleManager,
		}
		if err := db.Where("league_id = ? AND user_id = ?", league.ID, user.ID).FirstOrCreate(&membership, membership).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create league membership for %s: %v", email, err)
		}
	}

	return &league, created, nil
}

func createTeam(db *gorm.DB, teamData TeamData, leagueMap map[string]*models.League, userMap map[string]*models.User) (*models.Team, bool, error) {
	league := leagueMap[teamData.LeagueName]
	if league == nil {
		return nil, false, fmt.Errorf("league %s not found for team %s", teamData.LeagueName, teamData.Name)
	}

	var team models.Team
	created := false
	if err := db.Where("name = ? AND league_id = ?", teamData.Name, league.ID).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				LeagueID: league.ID,
				Name:     teamData.Name,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	addRosterEntry := func(email string, role models.TeamRole) {
		user := userMap[email]
		if user == nil {
			log.Printf("⚠️  Warning: player %s not found for team %s", email, teamData.Name)
			return
		}
		entry := models.TeamMember{
			TeamID:   team.ID,
			UserID:   user.ID,
			Role:     role,
			IsActive: true,
		}
		if err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).FirstOrCreate(&entry, entry).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create roster entry for %s: %v", email, err)
		}
		// Rostered players are also league members
		membership := models.LeagueMember{
			LeagueID: league.ID,
			UserID:   user.ID,
			Role:     models.LeagueRolePlayer,
		}
		if err := db.Where("league_id = ? AND user_id = ?", league.ID, user.ID).FirstOrCreate(&membership, membership).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create league membership for %s: %v", email, err)
		}
	}

	if teamData.Captain != "" {
		addRosterEntry(teamData.Captain, models.TeamRoleCaptain)
	}
	for _, email := range teamData.Players {
		addRosterEntry(email, models.TeamRolePlayer)
	}

	return &team, created, nil
}

func createLocation(db *gorm.DB, locationData LocationData) (*models.Location, bool, error) {
	var location models.Location
	if err := db.Where("name = ?", locationData.Name).First(&location).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			fieldCount := locationData.FieldCount
			if fieldCount < 1 {
				fieldCount = 1
			}

			location = models.Location{
				Name:       locationData.Name,
				Address:    locationData.Address,
				City:       locationData.City,
				FieldCount: fieldCount,
			}

			if err := db.Create(&location).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create location: %w", err)
			}
			return &location, true, nil
		}
		return nil, false, fmt.Errorf("failed to query location: %w", err)
	}

	return &location, false, nil
}

func createMatch(db *gorm.DB, matchData MatchData, leagueMap map[string]*models.League, teamMap map[string]*models.Team, locationMap map[string]*models.Location) (*models.Match, bool, error) {
	league := leagueMap[matchData.LeagueName]
	if league == nil {
		return nil, false, fmt.Errorf("league %s not found", matchData.LeagueName)
	}

	homeTeam := teamMap[matchData.HomeTeamName]
	awayTeam := teamMap[matchData.AwayTeamName]
	if homeTeam == nil || awayTeam == nil {
		return nil, false, fmt.Errorf("teams %s / %s not found", matchData.HomeTeamName, matchData.AwayTeamName)
	}

	var locationID *uuid.UUID
	if matchData.LocationName != "" {
		if location := locationMap[matchData.LocationName]; location != nil {
			locationID = &location.ID
		}
	}

	var match models.Match
	if err := db.Where("league_id = ? AND home_team_id = ? AND away_team_id = ? AND scheduled_at = ?",
		league.ID, homeTeam.ID, awayTeam.ID, matchData.ScheduledAt).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.MatchStatusScheduled
			if matchData.Status != "" {
				status = models.MatchStatus(matchData.Status)
			}

			match = models.Match{
				LeagueID:    league.ID,
				HomeTeamID:  homeTeam.ID,
				AwayTeamID:  awayTeam.ID,
				LocationID:  locationID,
				ScheduledAt: matchData.ScheduledAt,
				Status:      status,
			}

			if err := db.Create(&match).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create match: %w", err)
			}
			return &match, true, nil
		}
		return nil, false, fmt.Errorf("failed to query match: %w", err)
	}

	return &match, false, nil
}

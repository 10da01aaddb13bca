package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/backup"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/keyring"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/migration"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/postgres"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/sqlite"
)

// ErrNoUser is returned when a command needs a user and none is selected.
var ErrNoUser = errors.New("no user selected, run 'evolv user add <name>' or pass --user")

type Context struct {
	Store storage.Provider
	// User is the --user flag: an id or a name. Empty means the default user.
	User string
	// Recommender overrides the one built from settings (tests, offline use).
	Recommender recommend.Recommender
	Now         func() time.Time
}

// Migrator is implemented by stores with an embedded schema.
type Migrator interface {
	Migrator() *migration.Runner
}

// OpenStore picks the store for config. The default path defers to
// EVOLV_DB_CONNECTION and then to a connection string in the OS keyring.
// PostgreSQL URLs given on the command line must not embed a password.
func OpenStore(config string) (storage.Provider, error) {
	target := config
	fromSecret := false
	if config == "" || config == constants.DefaultConfigPath {
		if env := os.Getenv(constants.EnvDBConnection); env != "" {
			target, fromSecret = env, true
		} else if connStr, err := keyring.GetConnectionString(); err == nil {
			target, fromSecret = connStr, true
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("keyring lookup skipped", "error", err)
		}
	}

	if postgres.IsConnString(target) || strings.Contains(target, "host=") {
		if _, err := postgres.ValidateConnString(target); err != nil {
			if !(fromSecret && errors.Is(err, postgres.ErrEmbeddedCredentials)) {
				return nil, fmt.Errorf("%w. Use the OS keyring ('evolv keyring set db ...'), %s, or ~/.pgpass instead", err, constants.EnvDBConnection)
			}
		}
		return postgres.New(target), nil
	}

	path, err := ExpandPath(target)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ExpandPath resolves a leading ~/ against the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		path = constants.DefaultConfigPath
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

// Clock returns the current time, honouring Now when set.
func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Engine builds an engine from the stored settings.
func (c *Context) Engine() (*engine.Engine, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	rec := c.Recommender
	if rec == nil {
		rec = BuildRecommender(settings)
	}
	opts := []engine.Option{engine.WithSettings(settings), engine.WithClock(c.Clock)}
	if rec != nil {
		opts = append(opts, engine.WithRecommender(rec))
	}
	return engine.New(c.Store, opts...), nil
}

// BuildRecommender returns a circuit-guarded LLM client, or nil when no API
// key is configured for the hosted default endpoint.
func BuildRecommender(settings models.Settings) recommend.Recommender {
	if !settings.RecommendationsEnabled {
		return nil
	}
	key := os.Getenv(constants.EnvLLMAPIKey)
	if key == "" {
		if k, err := keyring.GetLLMAPIKey(); err == nil {
			key = k
		}
	}
	if key == "" && settings.LLMBaseURL == constants.DefaultLLMBaseURL {
		logger.Debug("no LLM API key configured, using fallback recommendations")
		return nil
	}
	client := recommend.NewLLMClient(recommend.LLMConfig{
		BaseURL: settings.LLMBaseURL,
		APIKey:  key,
		Model:   settings.LLMModel,
	})
	return recommend.NewCircuitBreaker(recommend.BreakerConfig{}).Guard(client)
}

// CurrentUser resolves --user, then the default user in settings, then the
// only user if there is exactly one.
func (c *Context) CurrentUser() (models.User, error) {
	ref := strings.TrimSpace(c.User)
	if ref == "" {
		settings, err := c.Store.GetSettings()
		if err != nil {
			return models.User{}, fmt.Errorf("failed to get settings: %w", err)
		}
		ref = settings.DefaultUserID
	}
	return FindUser(c.Store, ref)
}

// FindUser looks a user up by id or case-insensitive name. An empty ref
// matches only when exactly one user exists.
func FindUser(store storage.Provider, ref string) (models.User, error) {
	if _, err := uuid.Parse(ref); err == nil {
		user, err := store.GetUser(ref)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return models.User{}, apperrors.NotFound("user", ref)
			}
			return models.User{}, err
		}
		return user, nil
	}

	users, err := store.GetAllUsers()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to list users: %w", err)
	}
	if ref == "" {
		if len(users) == 1 {
			return users[0], nil
		}
		return models.User{}, ErrNoUser
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, ref) {
			return u, nil
		}
	}
	return models.User{}, apperrors.NotFound("user", ref)
}

// FindHabit resolves a habit by id or by the user's active habit name.
func FindHabit(store storage.Provider, userID, ref string) (models.Habit, error) {
	if _, err := uuid.Parse(ref); err == nil {
		habit, err := store.GetHabit(ref)
		if err == nil && habit.UserID == userID {
			return habit, nil
		}
	}
	habit, err := store.GetHabitByName(userID, ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("habit %q not found", ref)
		}
		return models.Habit{}, err
	}
	return habit, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// don't interrupt the user's workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseRating converts a 0 flag value to "no rating".
func ParseRating(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

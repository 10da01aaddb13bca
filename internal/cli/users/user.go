package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/validation"
)

type UserCmd struct {
	Add  UserAddCmd  `cmd:"" help:"Add a user."`
	List UserListCmd `cmd:"" help:"List users."`
	Use  UserUseCmd  `cmd:"" help:"Set the default user."`
}

type UserAddCmd struct {
	Name string `arg:"" help:"User name."`
}

func (c *UserAddCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("user name cannot be empty")
	}
	if len(name) > validation.MaxNameLength {
		return fmt.Errorf("user name exceeds %d characters", validation.MaxNameLength)
	}

	users, err := ctx.Store.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			return fmt.Errorf("user %q already exists", u.Name)
		}
	}

	user := models.User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddUser(user); err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}
	fmt.Printf("Added user: %s (ID: %s)\n", user.Name, user.ID)

	// The first user becomes the default.
	if len(users) == 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings.DefaultUserID = user.ID
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}
	return nil
}

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *cli.Context) error {
	users, err := ctx.Store.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		fmt.Println("No users found. Run 'evolv user add <name>' to create one.")
		return nil
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, u := range users {
		marker := "  "
		if u.ID == settings.DefaultUserID {
			marker = "* "
		}
		fmt.Printf("%s%s (ID: %s, since %s)\n", marker, u.Name, u.ID, u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

type UserUseCmd struct {
	Name string `arg:"" help:"User name or ID."`
}

func (c *UserUseCmd) Run(ctx *cli.Context) error {
	user, err := cli.FindUser(ctx.Store, c.Name)
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.DefaultUserID = user.ID
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Default user is now %s\n", user.Name)
	return nil
}

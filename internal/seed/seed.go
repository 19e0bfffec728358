// Package seed loads demo users, folders and links from a YAML fixture.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"linkvault/internal/domain"
	"linkvault/internal/domain/services"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// Fixture is the root of a seed file
type Fixture struct {
	Users []UserFixture `yaml:"users"`
}

// UserFixture is one identity with its folders
type UserFixture struct {
	Username string          `yaml:"username"`
	Email    string          `yaml:"email"`
	Password string          `yaml:"password"`
	Folders  []FolderFixture `yaml:"folders"`
}

// FolderFixture is one folder with its links
type FolderFixture struct {
	Name  string        `yaml:"name"`
	Links []LinkFixture `yaml:"links"`
}

// LinkFixture is one bookmark
type LinkFixture struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Result counts what Apply created
type Result struct {
	Users   int
	Skipped int
	Folders int
	Links   int
}

// Load decodes a fixture. Unknown keys are rejected.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// Default returns the built-in demo fixture
func Default() (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(defaultFixture, &f); err != nil {
		return nil, fmt.Errorf("decode default fixture: %w", err)
	}
	return &f, nil
}

// Seeder inserts fixtures through the services
type Seeder struct {
	auth    services.AuthService
	folders services.FolderService
	links   services.LinkService
	logger  *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(auth services.AuthService, folders services.FolderService, links services.LinkService, logger *slog.Logger) *Seeder {
	return &Seeder{auth: auth, folders: folders, links: links, logger: logger}
}

// Apply creates every user of the fixture with their folders and links.
// Users that already exist are skipped along with their content, so
// running Apply twice is harmless.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result

	for _, u := range f.Users {
		session, err := s.auth.Register(ctx, &services.RegisterRequest{
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				s.logger.Info("seed user exists, skipping", "username", u.Username)
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("register %s: %w", u.Username, err)
		}
		res.Users++
		userID := session.User.ID

		for _, fd := range u.Folders {
			folder, err := s.folders.CreateFolder(ctx, &services.CreateFolderRequest{
				UserID: userID,
				Name:   fd.Name,
			})
			if err != nil {
				return res, fmt.Errorf("create folder %q for %s: %w", fd.Name, u.Username, err)
			}
			res.Folders++

			for _, l := range fd.Links {
				_, err := s.links.CreateLink(ctx, &services.CreateLinkRequest{
					UserID:   userID,
					FolderID: folder.ID,
					Title:    l.Title,
					URL:      l.URL,
				})
				if err != nil {
					return res, fmt.Errorf("create link %q in %q: %w", l.Title, fd.Name, err)
				}
				res.Links++
			}
		}
	}

	return res, nil
}

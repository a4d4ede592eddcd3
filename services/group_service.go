package services

import (
	"strconv"

	"github.com/Antdol/LittleLemonAPI/authz"
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

// GroupService administers the Manager and Delivery Crew groups and
// resolves principals for the authorization gate.
type GroupService struct {
	Users  *repository.UserRepository
	Groups *repository.GroupRepository
}

func NewGroupService(users *repository.UserRepository, groups *repository.GroupRepository) *GroupService {
	return &GroupService{Users: users, Groups: groups}
}

// LoadPrincipal reads the user and its current roles.
func (s *GroupService) LoadPrincipal(userID uint) (authz.Principal, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		return authz.Principal{}, errors.Wrap(err, "load user")
	}
	roles, err := s.Groups.RolesOf(userID)
	if err != nil {
		return authz.Principal{}, errors.Wrap(err, "load roles")
	}
	return authz.Principal{UserID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin, Roles: roles}, nil
}

func (s *GroupService) group(name string) (*entity.Group, error) {
	g, err := s.Groups.FindByName(name)
	if err != nil {
		// groups are seeded at startup, a miss is a deployment error
		return nil, errors.Wrapf(err, "group %s", name)
	}
	return g, nil
}

// Members maps user id (as a string key) to username.
func (s *GroupService) Members(role string) (map[string]string, error) {
	users, err := s.Groups.Members(role)
	if err != nil {
		return nil, errors.Wrap(err, "list members")
	}
	out := make(map[string]string, len(users))
	for _, u := range users {
		out[strconv.FormatUint(uint64(u.ID), 10)] = u.Username
	}
	return out, nil
}

// Add puts username into role. Adding an existing member succeeds.
func (s *GroupService) Add(role, username string) error {
	if username == "" {
		return apperr.Validation("username: this field is required")
	}
	u, err := s.Users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("User %q does not exist", username)
	}
	if err != nil {
		return errors.Wrap(err, "find user")
	}
	g, err := s.group(role)
	if err != nil {
		return err
	}
	return errors.Wrap(s.Groups.AddMember(u, g), "add member")
}

// Remove takes userID out of role. A user that exists but is not a member
// is reported as not found as well.
func (s *GroupService) Remove(role string, userID uint) error {
	if _, err := s.Users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User does not exist")
		}
		return errors.Wrap(err, "find user")
	}
	g, err := s.group(role)
	if err != nil {
		return err
	}
	removed, err := s.Groups.RemoveMember(userID, g.ID)
	if err != nil {
		return errors.Wrap(err, "remove member")
	}
	if !removed {
		return apperr.NotFound("This user is not part of the %s group", role)
	}
	return nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenIssuer
}

// dummyHash is compared against when a login identifier matches no record,
// so the unknown-identifier path costs a full bcrypt verification just like
// the wrong-password path.
const dummyPassword = "login-cost-equalizer"

var dummyHash = func() string {
	h, err := utils.HashPassword(dummyPassword)
	if err != nil {
		panic(err)
	}
	return h
}()

func NewAuthService(db *gorm.DB, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Gmail    string
	Phone    string
	Age      int
	Gender   string
	Weight   float64
	Height   float64
	Goal     string
	Password string
}

// Register creates a credential record and issues a token for it. The lookup
// before the insert is an optimization only: two concurrent registrations of
// the same identifier are resolved by the unique constraints, whose violation
// is reported as the same ErrAlreadyExists.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("gmail = ? OR phone = ?", in.Gmail, in.Phone).First(&existing).Error
	if err == nil {
		return nil, "", ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:     in.Name,
		Gmail:    in.Gmail,
		Phone:    in.Phone,
		Age:      in.Age,
		Gender:   in.Gender,
		Weight:   in.Weight,
		Height:   in.Height,
		Goal:     in.Goal,
		Password: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Gmail)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login authenticates by either contact identifier. An unknown identifier and
// a wrong password both return ErrInvalidCredentials so the two cases are
// indistinguishable to the caller.
func (s *AuthService) Login(identifier, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("gmail = ? OR phone = ?", identifier, identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.CheckPasswordHash(password, dummyHash)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Gmail)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

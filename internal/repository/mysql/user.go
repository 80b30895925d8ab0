package mysql

import (
	"context"
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/bloglist/domain"
	"github.com/Guyuepp/bloglist/internal/repository/mysql/model"
)

// mysqlErrDuplicateEntry is ER_DUP_ENTRY
const mysqlErrDuplicateEntry = 1062

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	key, err := model.ParseID(id)
	if err != nil || key == 0 {
		return domain.User{}, domain.ErrNotFound
	}

	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", key).Error; err != nil {
		return domain.User{}, notFound(err)
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	keys := parseIDs(ids)
	if len(keys) == 0 {
		return nil, nil
	}

	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", keys).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return domain.User{}, notFound(err)
	}
	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	userModel.ID = 0

	result := m.DB.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		var me *mysqlDriver.MySQLError
		if errors.As(result.Error, &me) && me.Number == mysqlErrDuplicateEntry {
			return domain.ErrConflict
		}
		return result.Error
	}

	u.ID = model.FormatID(userModel.ID)
	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (m *userRepository) Fetch(ctx context.Context) ([]domain.User, error) {
	var users []model.User
	if err := m.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

package service

import (
	"errors"
	"fmt"

	"recipe-go/internal/config"
	"recipe-go/internal/dto"
	"recipe-go/internal/models"
	"recipe-go/internal/repository"
	"recipe-go/internal/utils"

	"gorm.io/gorm"
)

// UserService 用户服务,负责身份记录与凭证规则
type UserService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
}

// NewUserService 创建用户服务
func NewUserService(userRepo *repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// CreateUser 创建用户
// 邮箱规范化后按不区分大小写检查唯一性,明文密码哈希后立即丢弃
func (s *UserService) CreateUser(email, password, name string) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, errors.New("邮箱是必填字段")
	}
	if err := utils.GetValidator().Var(email, "email"); err != nil {
		return nil, errors.New("邮箱格式无效")
	}
	if len(password) < s.cfg.User.MinPasswordLength {
		return nil, fmt.Errorf("密码长度不能小于%d", s.cfg.User.MinPasswordLength)
	}

	// 唯一性检查
	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("检查邮箱失败: %w", err)
	}
	if exists {
		return nil, errors.New("邮箱已被注册")
	}

	// 哈希密码
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	// 创建用户
	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// CreateSuperuser 创建超级用户,附带员工与超级用户标记
func (s *UserService) CreateSuperuser(email, password string) (*models.User, error) {
	user, err := s.CreateUser(email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新超级用户标记失败: %w", err)
	}

	return user, nil
}

// VerifyPassword 验证密码
func (s *UserService) VerifyPassword(user *models.User, candidate string) bool {
	return utils.CheckPassword(candidate, user.PasswordHash) == nil
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 更新个人资料,只允许修改姓名和密码
func (s *UserService) UpdateProfile(userID uint, req *dto.UpdateMeRequest) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < s.cfg.User.MinPasswordLength {
			return nil, fmt.Errorf("密码长度不能小于%d", s.cfg.User.MinPasswordLength)
		}
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("密码哈希失败: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	return user, nil
}

// InitSuperuser 按配置引导超级用户,已存在时跳过
func (s *UserService) InitSuperuser() error {
	if s.cfg.Admin.Email == "" {
		return nil // 未配置引导账户
	}

	if su, err := s.userRepo.GetSuperuser(); err == nil && su != nil {
		return nil // 已存在超级用户
	}

	// 配置中的密码允许直接给bcrypt哈希,避免明文落盘
	if utils.IsBcryptHash(s.cfg.Admin.Password) {
		email := utils.NormalizeEmail(s.cfg.Admin.Email)
		user := &models.User{
			Email:        email,
			PasswordHash: s.cfg.Admin.Password,
			IsActive:     true,
			IsStaff:      true,
			IsSuperuser:  true,
		}
		return s.userRepo.Create(user)
	}

	_, err := s.CreateSuperuser(s.cfg.Admin.Email, s.cfg.Admin.Password)
	return err
}

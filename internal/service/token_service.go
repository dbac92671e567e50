package service

import (
	"fmt"
	"time"

	"recipe-go/internal/config"
	"recipe-go/internal/models"
	"recipe-go/internal/repository"
	"recipe-go/internal/utils"
)

// TokenService 令牌服务,签发与解析不透明访问令牌
// 采用单会话策略:重新签发会作废用户之前的令牌
type TokenService struct {
	userRepo  *repository.UserRepository
	tokenRepo *repository.TokenRepository
	cfg       *config.Config
}

// NewTokenService 创建令牌服务
func NewTokenService(userRepo *repository.UserRepository, tokenRepo *repository.TokenRepository, cfg *config.Config) *TokenService {
	return &TokenService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

// IssueToken 校验凭证并签发令牌
// 所有失败分支返回同一个错误,不暴露邮箱是否存在
func (s *TokenService) IssueToken(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(utils.NormalizeEmail(email))
	if err != nil {
		return "", ErrAuthentication
	}

	if err := utils.CheckPassword(password, user.PasswordHash); err != nil {
		return "", ErrAuthentication
	}

	if !user.IsActive {
		return "", ErrAuthentication
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return "", fmt.Errorf("签发令牌失败: %w", err)
	}

	token := &models.Token{
		Key:    key,
		UserID: user.ID,
	}

	// 删除旧令牌与写入新令牌在同一事务内完成
	if err := s.tokenRepo.Replace(token); err != nil {
		return "", fmt.Errorf("保存令牌失败: %w", err)
	}

	return key, nil
}

// ResolveToken 解析令牌并返回其绑定的用户
func (s *TokenService) ResolveToken(key string) (*models.User, error) {
	token, err := s.tokenRepo.GetByKey(key)
	if err != nil {
		return nil, ErrAuthentication
	}

	// 过期检查,过期令牌顺带清理
	if expire := s.cfg.Token.GetExpireDuration(); expire > 0 {
		if time.Since(token.CreatedAt) > expire {
			_ = s.tokenRepo.DeleteByKey(key)
			return nil, ErrAuthentication
		}
	}

	if !token.User.IsActive {
		return nil, ErrAuthentication
	}

	return &token.User, nil
}

// RevokeToken 作废令牌(登出)
func (s *TokenService) RevokeToken(key string) error {
	return s.tokenRepo.DeleteByKey(key)
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenKeyBytes 令牌随机字节数,hex编码后为40字符
const tokenKeyBytes = 20

// GenerateTokenKey 生成不可猜测的令牌值
func GenerateTokenKey() (string, error) {
	buf := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成令牌失败: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package utils

import (
	"strings"
)

// NormalizeEmail 规范化邮箱:域名部分统一小写,本地部分保持原样
// 唯一性检查在存储层按整体不区分大小写进行
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

package service

import (
	"errors"
)

// 服务层哨兵错误,由Handler映射为HTTP状态码
var (
	// ErrAuthentication 认证失败的统一错误,不泄露邮箱是否存在
	ErrAuthentication = errors.New("无法使用提供的凭证进行认证")
	// ErrNotFound 记录不存在或不属于当前用户,两种情况对外不可区分
	ErrNotFound = errors.New("记录不存在")
)

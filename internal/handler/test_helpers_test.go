package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"recipe-go/internal/config"
	"recipe-go/internal/models"
	"recipe-go/internal/router"
	"recipe-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter 构建完整路由与独立内存数据库
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}

	cfg := &config.Config{
		User:  config.UserConfig{MinPasswordLength: 5},
		Token: config.TokenConfig{ExpireHours: 720},
		Upload: config.UploadConfig{
			Root:      t.TempDir(),
			MaxSizeMB: 10,
		},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	// 测试不接Redis,登录限流关闭
	return router.SetupRouter(cfg, log, db, nil), db
}

// doJSON 发送JSON请求,token为空时不带认证头
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// decodeData 解析统一响应格式中的data字段
func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("解析响应失败: %v, body: %s", err, resp.Body.String())
	}
	if len(out.Data) == 0 {
		return nil
	}

	var data map[string]any
	if err := json.Unmarshal(out.Data, &data); err != nil {
		t.Fatalf("解析data失败: %v, data: %s", err, string(out.Data))
	}
	return data
}

// decodeList 解析data为列表的响应
func decodeList(t *testing.T, resp *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var out struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("解析列表响应失败: %v, body: %s", err, resp.Body.String())
	}
	return out.Data
}

// tagPath 根据响应中的id拼接标签详情路径
func tagPath(id float64) string {
	return fmt.Sprintf("/api/tags/%d", int(id))
}

// ingredientPath 根据响应中的id拼接食材详情路径
func ingredientPath(id float64) string {
	return fmt.Sprintf("/api/ingredients/%d", int(id))
}

// recipePath 根据响应中的id拼接菜谱详情路径
func recipePath(id float64) string {
	return fmt.Sprintf("/api/recipes/%d", int(id))
}

// userPath 管理接口的用户详情路径
func userPath(id uint) string {
	return fmt.Sprintf("/api/admin/users/%d", id)
}

// registerAndLogin 注册用户并返回访问令牌
func registerAndLogin(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	resp := doJSON(r, "POST", "/api/users", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     "Test name",
	})
	if resp.Code != 201 {
		t.Fatalf("注册失败: %d, body: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(r, "POST", "/api/users/token", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if resp.Code != 200 {
		t.Fatalf("登录失败: %d, body: %s", resp.Code, resp.Body.String())
	}

	token, _ := decodeData(t, resp)["token"].(string)
	if token == "" {
		t.Fatalf("期望返回非空令牌")
	}
	return token
}

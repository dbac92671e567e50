package handler_test

import (
	"net/http"
	"testing"

	"recipe-go/internal/models"
)

func TestTagRequiresAuth(t *testing.T) {
	r, _ := setupTestRouter(t)

	if resp := doJSON(r, "GET", "/api/tags", "", nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("GET期望401, 实际%d", resp.Code)
	}
	if resp := doJSON(r, "POST", "/api/tags", "", map[string]string{"name": "Vegan"}); resp.Code != http.StatusUnauthorized {
		t.Fatalf("POST期望401, 实际%d", resp.Code)
	}
}

func TestTagCreateAndList(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "test@gmail.com", "password")

	for _, name := range []string{"Vegan", "Dessert"} {
		resp := doJSON(r, "POST", "/api/tags", token, map[string]string{"name": name})
		if resp.Code != http.StatusCreated {
			t.Fatalf("创建标签失败: %d, body: %s", resp.Code, resp.Body.String())
		}
	}

	resp := doJSON(r, "GET", "/api/tags", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("期望200, 实际%d", resp.Code)
	}

	tags := decodeList(t, resp)
	if len(tags) != 2 {
		t.Fatalf("期望2个标签, 实际%d", len(tags))
	}
	// 按名称倒序
	if tags[0]["name"] != "Vegan" || tags[1]["name"] != "Dessert" {
		t.Fatalf("排序不符: %v", tags)
	}
}

func TestTagLimitedToAuthenticatedUser(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "test@gmail.com", "password")
	otherToken := registerAndLogin(t, r, "other@gmail.com", "password")

	doJSON(r, "POST", "/api/tags", otherToken, map[string]string{"name": "Vegan"})
	doJSON(r, "POST", "/api/tags", token, map[string]string{"name": "Fruity"})

	resp := doJSON(r, "GET", "/api/tags", token, nil)
	tags := decodeList(t, resp)
	if len(tags) != 1 {
		t.Fatalf("期望1个标签, 实际%d: %v", len(tags), tags)
	}
	if tags[0]["name"] != "Fruity" {
		t.Fatalf("期望Fruity, 实际%v", tags[0]["name"])
	}
}

func TestTagCreateInvalid(t *testing.T) {
	r, db := setupTestRouter(t)
	token := registerAndLogin(t, r, "test@gmail.com", "password")

	resp := doJSON(r, "POST", "/api/tags", token, map[string]string{"name": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("期望400, 实际%d", resp.Code)
	}

	var count int64
	db.Model(&models.Tag{}).Count(&count)
	if count != 0 {
		t.Fatalf("失败时不应留下记录")
	}
}

func TestTagAccessNotOwnedIsNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "test@gmail.com", "password")
	otherToken := registerAndLogin(t, r, "other@gmail.com", "password")

	resp := doJSON(r, "POST", "/api/tags", otherToken, map[string]string{"name": "Vegan"})
	id := decodeData(t, resp)["id"].(float64)

	// 他人数据表现为不存在而不是没有权限
	if resp := doJSON(r, "GET", tagPath(id), token, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("GET期望404, 实际%d", resp.Code)
	}
	if resp := doJSON(r, "PATCH", tagPath(id), token, map[string]string{"name": "X"}); resp.Code != http.StatusNotFound {
		t.Fatalf("PATCH期望404, 实际%d", resp.Code)
	}
	if resp := doJSON(r, "DELETE", tagPath(id), token, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("DELETE期望404, 实际%d", resp.Code)
	}

	// 所有者依旧可以访问
	if resp := doJSON(r, "GET", tagPath(id), otherToken, nil); resp.Code != http.StatusOK {
		t.Fatalf("所有者访问失败: %d", resp.Code)
	}
}

func TestTagUpdateAndDelete(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := registerAndLogin(t, r, "test@gmail.com", "password")

	resp := doJSON(r, "POST", "/api/tags", token, map[string]string{"name": "Vegan"})
	id := decodeData(t, resp)["id"].(float64)

	resp = doJSON(r, "PATCH", tagPath(id), token, map[string]string{"name": "Vegetarian"})
	if resp.Code != http.StatusOK {
		t.Fatalf("更新失败: %d", resp.Code)
	}
	if decodeData(t, resp)["name"] != "Vegetarian" {
		t.Fatalf("名称未更新")
	}

	if resp := doJSON(r, "DELETE", tagPath(id), token, nil); resp.Code != http.StatusNoContent {
		t.Fatalf("删除期望204, 实际%d", resp.Code)
	}
	if resp := doJSON(r, "GET", tagPath(id), token, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("删除后期望404, 实际%d", resp.Code)
	}
}

// ============================================================================
// 测试 Token 生成脚本
// ============================================================================
//
// 用途：生成用于 Apifox 测试的 JWT Token（三种角色各一枚）
// 运行：go run scripts/gen_test_token.go
//
// ============================================================================

package main

import (
	"fmt"
	"time"

	"guide-platform/common/utils/jwt"

	"github.com/google/uuid"
)

func main() {
	// 与 app/*/api/etc/*.yaml 中的 AccessSecret 保持一致
	cfg := jwt.AuthConfig{
		Secret: "your-access-secret-key-change-in-production-32chars",
		Expire: int64(2 * 365 * 24 * time.Hour / time.Second), // 长期测试使用
	}

	// 测试账号（需要与数据库中的用户ID一致）
	accounts := []struct {
		userID int64
		role   jwt.Role
	}{
		{10001, jwt.RoleCustomer},
		{20001, jwt.RoleGuide},
		{90001, jwt.RoleAdmin},
	}

	fmt.Println("============================================")
	fmt.Println("测试 JWT Token 生成")
	fmt.Println("============================================")

	for _, a := range accounts {
		result, err := jwt.GenerateToken(a.userID, a.role, cfg, uuid.NewString())
		if err != nil {
			fmt.Printf("生成 Token 失败 (userID=%d role=%s): %v\n", a.userID, a.role, err)
			continue
		}

		fmt.Printf("用户ID: %d  角色: %s\n", a.userID, a.role)
		fmt.Printf("过期时间: %s\n", time.Unix(result.ExpireAt, 0).Format("2006-01-02 15:04:05"))
		fmt.Println("--------------------------------------------")
		fmt.Printf("Authorization: Bearer %s\n", result.Token)
		fmt.Println("============================================")
	}
}

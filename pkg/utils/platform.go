//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端行为运行（不响应 F11、不调整窗口）
const MobileEmulateEnv = "BADGE_MOBILE_EMULATE"

// IsMobile 是否运行在移动端（ebitenmobile 绑定）
// 桌面端编译时只在设置了 MobileEmulateEnv 时返回 true
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

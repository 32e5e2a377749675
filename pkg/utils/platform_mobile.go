//go:build mobile

package utils

// MobileEmulateEnv 移动端不使用，保留与桌面端一致的符号
const MobileEmulateEnv = "BADGE_MOBILE_EMULATE"

// IsMobile 移动端编译时恒为 true
func IsMobile() bool {
	return true
}

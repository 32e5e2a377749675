//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 移动端入口（mobile.go / embed.go）只在 -tags mobile 时编译，
// 普通构建下 ./... 仍然需要这个包里至少有一个文件。
package mobile

// Dummy 占位导出函数
func Dummy() {}

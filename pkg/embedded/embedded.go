// Package embedded 提供嵌入资源的统一访问接口
//
// //go:embed 只能嵌入当前包目录下的文件，所以 embed.FS 变量声明在
// 项目根目录（embed.go）和 mobile 包中，启动时通过 Init 注入。
// 资源路径以 "assets/" 或 "data/" 开头，分别对应两个文件系统。
//
// 使用前必须调用 Init()。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS fs.FS
	dataFS   fs.FS
)

// Init 注入资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用。
// 测试中可以传入 fstest.MapFS。
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
}

// Reset 清除已注入的文件系统（仅用于测试）
func Reset() {
	assetsFS = nil
	dataFS = nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return assetsFS != nil && dataFS != nil
}

// resolve 规范化路径并按前缀选择文件系统
func resolve(path string) (fs.FS, string, error) {
	if !IsInitialized() {
		return nil, "", errNotInitialized
	}

	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开资源文件
func Open(path string) (fs.File, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取资源文件全部内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	fsys, name, err := resolve(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(fsys, name)
	return err == nil
}

package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

// Admin 管理员固定凭证，来自配置而不是用户表
type Admin struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Session 会话存储选择: memory 或 redis
type Session struct {
	Driver string `json:"driver" yaml:"driver"`
}

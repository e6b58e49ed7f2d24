package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// DefaultAvatar 新用户头像的默认外链地址
	DefaultAvatar string `json:"default_avatar" yaml:"default_avatar"`
	// HashSalt 用于生成 Pin 分享码
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}

package consts

const (
	TokenBlacklistKey = "token:blacklist:"
)

// MediaTempKey 已上传但尚未确认被引用的对象，Hash: object -> 元数据
const MediaTempKey = "media:temp"

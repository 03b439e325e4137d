package retcode

// 与前端约定的业务码：0 成功，1 通用失败；认证/鉴权沿用 HTTP 语义码
const (
	SUCCESS      = 0
	FAIL         = 1
	UNAUTHORIZED = 401
	FORBIDDEN    = 403
)

type CodeInfo struct {
	Code    int
	Message string
}

func All() map[string]CodeInfo {
	return map[string]CodeInfo{
		"SUCCESS":      {SUCCESS, "请求成功"},
		"FAIL":         {FAIL, "业务异常"},
		"UNAUTHORIZED": {UNAUTHORIZED, "身份认证失败"},
		"FORBIDDEN":    {FORBIDDEN, "没有访问权限"},
	}
}

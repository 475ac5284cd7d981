package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode 错误码类型
type ErrorCode int

// 错误码定义（按模块分组）
const (
	// 通用错误 (1000-1999)
	ErrUnknown       ErrorCode = 1000
	ErrInvalidParam  ErrorCode = 1001
	ErrNotFound      ErrorCode = 1002
	ErrAlreadyExists ErrorCode = 1003
	ErrTimeout       ErrorCode = 1005
	ErrCanceled      ErrorCode = 1006

	// 游戏错误 (2000-2999)
	ErrGameNotStarted    ErrorCode = 2000
	ErrGameAlreadyEnded  ErrorCode = 2001
	ErrSessionState      ErrorCode = 2002
	ErrSceneNotFound     ErrorCode = 2003
	ErrChoiceNotInScene  ErrorCode = 2004
	ErrChoicePending     ErrorCode = 2005
	ErrTeamNameRequired  ErrorCode = 2006
	ErrDepartmentInvalid ErrorCode = 2007
	ErrTeamTooSmall      ErrorCode = 2008
	ErrSessionNotFound   ErrorCode = 2009
	ErrSessionLimit      ErrorCode = 2010

	// 存储错误 (3000-3999)
	ErrStorageList   ErrorCode = 3000
	ErrStorageGet    ErrorCode = 3001
	ErrStorageSet    ErrorCode = 3002
	ErrRecordCorrupt ErrorCode = 3003
	ErrResultSave    ErrorCode = 3004

	// 数据库错误 (5000-5999)
	ErrDatabaseConnect ErrorCode = 5000
	ErrDatabaseQuery   ErrorCode = 5001
	ErrDatabaseInsert  ErrorCode = 5002

	// 配置错误 (6000-6999)
	ErrConfigLoad      ErrorCode = 6000
	ErrConfigParse     ErrorCode = 6001
	ErrGraphNoEntry    ErrorCode = 6002
	ErrGraphDangling   ErrorCode = 6003
	ErrGraphNoTerminal ErrorCode = 6004
)

// 错误码消息映射
var errorMessages = map[ErrorCode]string{
	// 通用错误
	ErrUnknown:       "未知错误",
	ErrInvalidParam:  "无效的参数",
	ErrNotFound:      "资源未找到",
	ErrAlreadyExists: "资源已存在",
	ErrTimeout:       "操作超时",
	ErrCanceled:      "操作已取消",

	// 游戏错误
	ErrGameNotStarted:    "游戏未开始",
	ErrGameAlreadyEnded:  "游戏已经结束",
	ErrSessionState:      "会话状态不允许该操作",
	ErrSceneNotFound:     "场景不存在",
	ErrChoiceNotInScene:  "选项不属于当前场景",
	ErrChoicePending:     "上一个选择尚未揭示完成",
	ErrTeamNameRequired:  "队伍名称不能为空",
	ErrDepartmentInvalid: "无效的部门",
	ErrTeamTooSmall:      "队伍成员不足",
	ErrSessionNotFound:   "会话不存在",
	ErrSessionLimit:      "会话数量已达上限",

	// 存储错误
	ErrStorageList:   "存储键枚举失败",
	ErrStorageGet:    "存储读取失败",
	ErrStorageSet:    "存储写入失败",
	ErrRecordCorrupt: "存储记录损坏",
	ErrResultSave:    "比赛结果保存失败",

	// 数据库错误
	ErrDatabaseConnect: "数据库连接失败",
	ErrDatabaseQuery:   "数据库查询失败",
	ErrDatabaseInsert:  "数据库插入失败",

	// 配置错误
	ErrConfigLoad:      "配置加载失败",
	ErrConfigParse:     "配置解析失败",
	ErrGraphNoEntry:    "剧情图缺少入口节点",
	ErrGraphDangling:   "剧情图存在悬空的目标场景",
	ErrGraphNoTerminal: "剧情图缺少终结节点",
}

// AppError 应用错误结构
type AppError struct {
	Code    ErrorCode    `json:"code"`            // 错误码
	Message string       `json:"message"`         // 错误消息
	Details string       `json:"details"`         // 详细信息
	Cause   error        `json:"-"`               // 原始错误
	Stack   []StackFrame `json:"stack,omitempty"` // 调用栈
}

// StackFrame 调用栈帧
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause 添加原因错误
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	if cause != nil && e.Details == "" {
		e.Details = cause.Error()
	}
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, details ...string) *AppError {
	message, ok := errorMessages[code]
	if !ok {
		message = errorMessages[ErrUnknown]
	}

	err := &AppError{
		Code:    code,
		Message: message,
	}

	if len(details) > 0 {
		err.Details = strings.Join(details, "; ")
	}

	// 捕获调用栈
	err.captureStack(2)

	return err
}

// Newf 创建格式化的应用错误
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	details := fmt.Sprintf(format, args...)
	return New(code, details)
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, details ...string) *AppError {
	if err == nil {
		return nil
	}

	// 如果已经是AppError，保留原始错误码
	if appErr, ok := err.(*AppError); ok {
		if len(details) > 0 {
			appErr.Details = strings.Join(details, "; ") + "; " + appErr.Details
		}
		return appErr
	}

	appErr := New(code, details...)
	appErr.Cause = err
	if appErr.Details == "" {
		appErr.Details = err.Error()
	}

	return appErr
}

// Wrapf 包装格式化错误
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	details := fmt.Sprintf(format, args...)
	return Wrap(err, code, details)
}

// Is 判断错误是否为指定错误码
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// GetCode 获取错误码
func GetCode(err error) ErrorCode {
	if err == nil {
		return 0
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}

	return ErrUnknown
}

// captureStack 捕获调用栈
func (e *AppError) captureStack(skip int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)

	if n > 0 {
		frames := runtime.CallersFrames(pcs[:n])
		for {
			frame, more := frames.Next()

			// 跳过runtime和本包的调用
			if strings.Contains(frame.Function, "runtime.") ||
				strings.Contains(frame.Function, "github.com/wfunc/fraud-game/internal/errors") {
				if !more {
					break
				}
				continue
			}

			e.Stack = append(e.Stack, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})

			if !more {
				break
			}

			// 只保留前10个栈帧
			if len(e.Stack) >= 10 {
				break
			}
		}
	}
}

// GetStack 获取格式化的调用栈
func (e *AppError) GetStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, frame := range e.Stack {
		builder.WriteString(fmt.Sprintf("%d. %s\n   %s:%d\n",
			i+1, frame.Function, frame.File, frame.Line))
	}

	return builder.String()
}

// HTTPStatus 返回对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code >= 2006 && e.Code <= 2008:
		return 400 // Bad Request
	case e.Code == ErrNotFound || e.Code == ErrSceneNotFound || e.Code == ErrSessionNotFound:
		return 404 // Not Found
	case e.Code == ErrSessionState || e.Code == ErrChoicePending:
		return 409 // Conflict
	case e.Code == ErrTimeout:
		return 408 // Request Timeout
	case e.Code >= 3000 && e.Code <= 3999:
		return 502 // Bad Gateway
	case e.Code >= 5000 && e.Code <= 5999:
		return 503 // Service Unavailable
	default:
		return 500 // Internal Server Error
	}
}

// IsRetryable 判断错误是否可重试
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	code := GetCode(err)
	switch code {
	case ErrTimeout,
		ErrStorageSet,
		ErrResultSave,
		ErrDatabaseConnect:
		return true
	default:
		return false
	}
}

// IsCritical 判断是否为严重错误
func IsCritical(err error) bool {
	if err == nil {
		return false
	}

	code := GetCode(err)
	switch code {
	case ErrDatabaseConnect,
		ErrConfigLoad,
		ErrGraphNoEntry,
		ErrGraphDangling,
		ErrGraphNoTerminal:
		return true
	default:
		return false
	}
}

// ErrorResponse API错误响应结构
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     *AppError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(err *AppError, requestID string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     err,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}

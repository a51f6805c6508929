package common

import "errors"

var (
	ErrRequestParamEmpty   = errors.New("request param is empty")
	ErrRequestParamInvalid = errors.New("request param is invalid")
)

type Resp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func MakeSuccessResp(data interface{}) *Resp {
	return &Resp{Code: 0, Message: "ok", Data: data}
}

func MakeUnknownErrorResp() *Resp {
	return &Resp{Code: 1, Message: "unknown error"}
}

func MakeBadParamResp() *Resp {
	return &Resp{Code: 2, Message: "bad request param"}
}

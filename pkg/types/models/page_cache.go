package model

import "time"

// PageCache는 변환된 문서 페이지를 캐싱하기 위한 구조체입니다
type PageCache struct {
	PageURL     string    `json:"pageURL" dynamodbav:"PageURL"`
	Markdown    string    `json:"markdown" dynamodbav:"Markdown"`
	ContentType string    `json:"contentType" dynamodbav:"ContentType"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"CreatedAt"`
	ExpiresAt   time.Time `json:"expiresAt" dynamodbav:"ExpiresAt"`
}

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	model "github.com/ocidocs-dev/ocidocs-go/pkg/types/models"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// DynamoDBService는 페이지 캐시를 DynamoDB에 저장하는 서비스입니다.
type DynamoDBService struct {
	client    *dynamodb.Client
	tableName string
	config    *configs.EnvConfig
}

// NewDynamoDBService는 새로운 DynamoDB 서비스를 생성합니다.
func NewDynamoDBService(config *configs.EnvConfig) (*DynamoDBService, error) {
	// AWS 설정
	var cfg aws.Config
	var err error

	// AWS 자격증명이 설정되어 있을 경우
	if config.AWS.AccessKeyID != "" && config.AWS.SecretAccessKey != "" {
		// 고정 자격증명 사용
		creds := credentials.NewStaticCredentialsProvider(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		)

		cfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(config.AWS.Region),
			awsconfig.WithCredentialsProvider(creds),
		)
	} else {
		// 기본 자격증명 프로바이더 체인 사용
		cfg, err = awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(config.AWS.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %v", err)
	}

	// DynamoDB 클라이언트 생성 (로컬 엔드포인트 지원)
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.AWS.DynamoDBEndpoint != "" {
			o.EndpointResolver = dynamodb.EndpointResolverFromURL(config.AWS.DynamoDBEndpoint)
		}
	})
	tableName := config.AWS.Tables.PageCache

	return &DynamoDBService{
		client:    client,
		tableName: tableName,
		config:    config,
	}, nil
}

// CreateTableIfNotExists는 페이지 캐시 테이블이 없을 경우 생성합니다.
func (s *DynamoDBService) CreateTableIfNotExists() error {
	// 테이블 존재 여부 확인
	exists, err := s.tableExists()
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %v", err)
	}

	// 테이블이 이미 존재하면 생성하지 않음
	if exists {
		return nil
	}

	// 테이블 생성 요청
	_, err = s.client.CreateTable(context.TODO(), &dynamodb.CreateTableInput{
		TableName: aws.String(s.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String("PageURL"),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String("PageURL"),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})

	if err != nil {
		return fmt.Errorf("테이블 생성 실패: %v", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(s.client)
	err = waiter.Wait(context.TODO(), &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	}, 2*time.Minute)

	if err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %v", err)
	}

	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func (s *DynamoDBService) tableExists() (bool, error) {
	_, err := s.client.DescribeTable(context.TODO(), &dynamodb.DescribeTableInput{
		TableName: aws.String(s.tableName),
	})

	if err != nil {
		// 테이블이 존재하지 않는 경우
		var notFoundErr *types.ResourceNotFoundException
		if ok := errors.As(err, &notFoundErr); ok {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetPageCache는 페이지 URL로 캐시를 조회합니다.
func (s *DynamoDBService) GetPageCache(pageURL string) (*model.PageCache, error) {
	result, err := s.client.GetItem(context.TODO(), &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PageURL": &types.AttributeValueMemberS{Value: pageURL},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("페이지 캐시 조회 실패: %v", err)
	}

	// 결과가 없는 경우
	if result.Item == nil {
		return nil, nil
	}

	var cache model.PageCache
	err = attributevalue.UnmarshalMap(result.Item, &cache)
	if err != nil {
		return nil, fmt.Errorf("페이지 캐시 언마샬 실패: %v", err)
	}

	// 만료된 캐시인지 확인
	if time.Now().After(cache.ExpiresAt) {
		// 만료된 캐시 삭제 (비동기로 실행)
		go s.DeletePageCache(pageURL)
		return nil, nil
	}

	return &cache, nil
}

// SavePageCache는 변환된 페이지를 캐시에 저장합니다.
func (s *DynamoDBService) SavePageCache(cache *model.PageCache) error {
	// 현재 시간 설정
	now := time.Now()
	if cache.CreatedAt.IsZero() {
		cache.CreatedAt = now
	}

	// 만료 시간이 설정되지 않은 경우 설정된 TTL 사용
	if cache.ExpiresAt.IsZero() {
		ttl := time.Duration(s.config.Cache.TTLHours) * time.Hour
		cache.ExpiresAt = now.Add(ttl)
	}

	// DynamoDB에 저장할 수 있도록 마샬링
	item, err := attributevalue.MarshalMap(cache)
	if err != nil {
		return fmt.Errorf("페이지 캐시 마샬 실패: %v", err)
	}

	// DynamoDB에 저장
	_, err = s.client.PutItem(context.TODO(), &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})

	if err != nil {
		return fmt.Errorf("페이지 캐시 저장 실패: %v", err)
	}

	return nil
}

// DeletePageCache는 페이지 캐시 항목을 삭제합니다.
func (s *DynamoDBService) DeletePageCache(pageURL string) error {
	_, err := s.client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PageURL": &types.AttributeValueMemberS{Value: pageURL},
		},
	})

	if err != nil {
		utils.Warn("db", "페이지 캐시 삭제 실패: %v", err)
		return fmt.Errorf("페이지 캐시 삭제 실패: %v", err)
	}

	return nil
}

// Package es 提供了与 Elasticsearch 交互的客户端功能。
package es

import (
	"bytes"
	"context"
	"creatorhub-go/internal/config"
	"creatorhub-go/internal/model"
	"creatorhub-go/pkg/log"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var ESClient *elasticsearch.Client

// InitES 初始化 Elasticsearch 客户端
func InitES(esCfg config.ElasticsearchConfig) error {
	cfg := elasticsearch.Config{
		Addresses: []string{esCfg.Addresses},
		Username:  esCfg.Username,
		Password:  esCfg.Password,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return err
	}
	ESClient = client
	return createIndexIfNotExists(esCfg.IndexName)
}

// createIndexIfNotExists 检查索引是否存在，如果不存在则创建它
func createIndexIfNotExists(indexName string) error {
	res, err := ESClient.Indices.Exists([]string{indexName})
	if err != nil {
		log.Errorf("检查索引是否存在时出错: %v", err)
		return err
	}
	// 如果 res.StatusCode 是 200，说明索引已存在
	if !res.IsError() && res.StatusCode == http.StatusOK {
		log.Infof("索引 '%s' 已存在", indexName)
		return nil
	}
	// 如果 res.StatusCode 是 404，说明索引不存在，需要创建
	if res.StatusCode != http.StatusNotFound {
		log.Errorf("检查索引 '%s' 是否存在时收到意外的状态码: %d", indexName, res.StatusCode)
		return fmt.Errorf("检查索引是否存在时收到意外的状态码: %d", res.StatusCode)
	}

	// 每个内容条目（图片/视频）一条文档，向量维度 768，cosine 相似度
	mapping := `{
		"mappings": {
			"properties": {
				"content_id": { "type": "keyword" },
				"content_type": { "type": "keyword" },
				"content_url": { "type": "keyword" },
				"content_title": { "type": "text" },
				"content_description": { "type": "text" },
				"display_order": { "type": "integer" },
				"youtube_id": { "type": "keyword" },
				"vimeo_id": { "type": "keyword" },
				"project_id": { "type": "long" },
				"project_title": { "type": "text" },
				"creator_id": { "type": "long" },
				"creator_username": { "type": "keyword" },
				"location": { "type": "keyword" },
				"bio": { "type": "text" },
				"primary_roles": { "type": "keyword" },
				"social_links": { "type": "keyword" },
				"work_email": { "type": "keyword" },
				"creator_score": { "type": "float" },
				"model_version": { "type": "keyword" },
				"vector": {
					"type": "dense_vector",
					"dims": 768,
					"index": true,
					"similarity": "cosine"
				}
			}
		}
	}`

	res, err = ESClient.Indices.Create(
		indexName,
		ESClient.Indices.Create.WithBody(strings.NewReader(mapping)),
	)

	if err != nil {
		log.Errorf("创建索引 '%s' 失败: %v", indexName, err)
		return err
	}
	if res.IsError() {
		log.Errorf("创建索引 '%s' 时 Elasticsearch 返回错误: %s", indexName, res.String())
		return errors.New("创建索引时 Elasticsearch 返回错误")
	}

	log.Infof("索引 '%s' 创建成功", indexName)
	return nil
}

// IndexContent 将单个内容文档索引到 Elasticsearch。
func IndexContent(ctx context.Context, indexName string, doc model.ContentDocument) error {
	docBytes, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: doc.ContentID,
		Body:       bytes.NewReader(docBytes),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, ESClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Errorf("索引内容文档到 Elasticsearch 出错: %s", res.String())
		return errors.New("failed to index content document")
	}

	return nil
}

// DeleteContent 从 Elasticsearch 中删除单个内容文档。文档不存在时视为成功。
func DeleteContent(ctx context.Context, indexName string, contentID string) error {
	req := esapi.DeleteRequest{
		Index:      indexName,
		DocumentID: contentID,
		Refresh:    "true",
	}

	res, err := req.Do(ctx, ESClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		log.Errorf("从 Elasticsearch 删除内容文档出错: %s", res.String())
		return errors.New("failed to delete content document")
	}

	return nil
}

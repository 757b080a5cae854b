package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var httpClient *http.Client

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 1000
	t.MaxIdleConnsPerHost = 1000
	t.MaxConnsPerHost = 1000
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:3001", "API base URL")
	total := flag.Int("n", 500, "number of concurrent likes")
	userID := flag.String("user", "like-stress", "creator id for the test post")
	flag.Parse()

	// 1. 创建测试帖子
	postID, err := createPost(*baseURL, *userID)
	if err != nil {
		fmt.Printf("创建帖子失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("开始压测：%d 个并发点赞 (PostID: %d)...\n", *total, postID)

	// 2. 并发点赞
	var wg sync.WaitGroup
	var success, failed int64
	start := time.Now()

	for i := 0; i < *total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if like(*baseURL, postID) {
				atomic.AddInt64(&success, 1)
			} else {
				atomic.AddInt64(&failed, 1)
			}
		}()
	}
	wg.Wait()
	duration := time.Since(start)

	// 3. 校验最终点赞数
	likes, err := fetchLikes(*baseURL, postID)
	if err != nil {
		fmt.Printf("查询帖子失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--------------------------------------------------")
	fmt.Printf("压测结束，耗时: %v\n", duration)
	fmt.Printf("QPS: %.2f\n", float64(*total)/duration.Seconds())
	fmt.Printf("成功点赞: %d, 失败: %d\n", success, failed)
	fmt.Printf("最终点赞数: %d (预期: %d)\n", likes, success)
	fmt.Println("--------------------------------------------------")

	if int64(likes) != success {
		fmt.Printf("点赞丢失: %d\n", success-int64(likes))
		os.Exit(1)
	}
}

func createPost(baseURL, userID string) (int64, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"type":    "text",
		"title":   "like stress " + time.Now().Format(time.RFC3339),
		"content": "concurrent like test",
		"userId":  userID,
	})
	resp, err := httpClient.Post(baseURL+"/api/posts", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		Post struct {
			ID int64 `json:"id"`
		} `json:"post"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return 0, err
	}
	return result.Post.ID, nil
}

func like(baseURL string, postID int64) bool {
	resp, err := httpClient.Post(fmt.Sprintf("%s/api/posts/%d/like", baseURL, postID), "application/json", nil)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func fetchLikes(baseURL string, postID int64) (int, error) {
	resp, err := httpClient.Get(fmt.Sprintf("%s/api/posts/%d", baseURL, postID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var result struct {
		Post struct {
			Likes int `json:"likes"`
		} `json:"post"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	return result.Post.Likes, nil
}

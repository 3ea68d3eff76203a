package limiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TokenBucketTestSuite struct {
	suite.Suite
	config *LimiterConfig
}

func (s *TokenBucketTestSuite) SetupTest() {
	s.config = &LimiterConfig{
		Capacity:   5,
		RatePS:     1,
		RefillRate: time.Second,
	}
}

func TestTokenBucketSuite(t *testing.T) {
	suite.Run(t, new(TokenBucketTestSuite))
}

func (s *TokenBucketTestSuite) TestInitialCapacity() {
	bucket := NewTokenBucket(s.config)
	defer bucket.Stop()

	// 測試初始容量
	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), bucket.Allow(), "應該允許第 %d 次請求", i+1)
	}

	// 超過容量應該被拒絕
	require.False(s.T(), bucket.Allow(), "超過容量限制應該被拒絕")
}

func (s *TokenBucketTestSuite) TestRefill() {
	bucket := NewTokenBucket(s.config)
	defer bucket.Stop()

	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), bucket.Allow())
	}
	require.False(s.T(), bucket.Allow())

	// 等待補充時間
	time.Sleep(s.config.RefillRate + 100*time.Millisecond)
	require.True(s.T(), bucket.Allow(), "補充後應該允許請求")
}

func (s *TokenBucketTestSuite) TestConcurrentAllow() {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:   100,
		RatePS:     1,
		RefillRate: time.Minute,
	})
	defer bucket.Stop()

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if bucket.Allow() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	// 併發下允許次數不能超過容量
	require.Equal(s.T(), int64(100), allowed.Load())
}

func (s *TokenBucketTestSuite) TestStopIsIdempotent() {
	bucket := NewTokenBucket(s.config)
	bucket.Stop()
	bucket.Stop()
}

func (s *TokenBucketTestSuite) TestNilConfigUsesDefault() {
	bucket := NewTokenBucket(nil)
	defer bucket.Stop()

	def := GetDefaultLimiterConfig()
	require.Equal(s.T(), def.Capacity, bucket.Capacity)
	require.True(s.T(), bucket.Allow())
}

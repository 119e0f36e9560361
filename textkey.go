// Package textkey computes deterministic, whitespace- and case-insensitive
// cache keys for text.
//
// Textkey normalizes text (Unicode lowercase, collapsed whitespace) and
// fingerprints the normalized form with MD5, so that caching layers such as
// an embedding cache or a semantic response cache map equivalent inputs to
// the same stored artifact. The digest choice is a compatibility constraint
// with existing stored keys, not a security mechanism.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/textkey"
//	    "github.com/ZaguanLabs/textkey/cache"
//	    "github.com/ZaguanLabs/textkey/embedding"
//	)
//
//	func main() {
//	    key := textkey.NormalizeAndHash("  Hello   World  ")
//	    // key == textkey.NormalizeAndHash("hello world")
//
//	    // Share embeddings across equivalent texts
//	    p := embedding.NewOpenAIProvider(embedding.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//	    cached := embedding.NewCachedProvider(p, cache.NewInMemoryCache(3600))
//	    vecs, err := cached.Embed(context.Background(), []string{"Hello World"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = vecs
//	}
package textkey

package container

// wordPageSize and bytePageSize are the page sizes Allocate rounds a new
// Container's capacity up to, mimicking a host that grows memory in coarse
// pages. AppendWords and AppendBytes grow past that capacity with Go's
// ordinary append, not in page multiples.
const (
	wordPageSize = 4096
	bytePageSize = 64 * 1024
)

// Container owns the two buffers the whole core builds into: a word
// buffer of 32-bit values (bucket counts and bucket-offset tables) and a
// byte buffer (bucket data for both hash tables). All offsets recorded
// elsewhere in the engine are relative to one of these two buffers, which
// is what makes an Image position-independent.
type Container struct {
	words []uint32
	bytes []byte
}

func pageRound(n, page int) int {
	if n <= 0 {
		return 0
	}
	return (n + page - 1) / page * page
}

// Allocate reserves a Container with wordCount words and byteCount bytes
// already present (zeroed), rounding the underlying capacity up to a
// whole number of pages so later growth via AppendWords/AppendBytes can
// often avoid a reallocation.
func Allocate(wordCount, byteCount int) *Container {
	return &Container{
		words: make([]uint32, wordCount, pageRound(wordCount, wordPageSize)),
		bytes: make([]byte, byteCount, pageRound(byteCount, bytePageSize)),
	}
}

// Words returns the word buffer's current contents.
func (c *Container) Words() []uint32 { return c.words }

// Bytes returns the byte buffer's current contents.
func (c *Container) Bytes() []byte { return c.bytes }

// Borrow returns both buffers' slices at once, so a builder that needs to
// write into both the word buffer and the byte buffer in the same step
// doesn't have to take them one accessor call at a time.
func (c *Container) Borrow() ([]uint32, []byte) {
	return c.words, c.bytes
}

// AppendWords grows the word buffer by ws, returning the word offset the
// first appended value landed at.
func (c *Container) AppendWords(ws ...uint32) int {
	offset := len(c.words)
	c.words = append(c.words, ws...)
	return offset
}

// AppendBytes grows the byte buffer by p, returning the byte offset the
// first appended byte landed at.
func (c *Container) AppendBytes(p []byte) int {
	offset := len(c.bytes)
	c.bytes = append(c.bytes, p...)
	return offset
}

// Package trie implements a prefix tree over the lowercase a-z alphabet.
// Words containing anything else are rejected outright.
package trie

const alphabetSize = 26

type node struct {
	children    [alphabetSize]*node
	prefixCount int
	isEnd       bool
}

func (n *node) hasChildren() bool {
	for _, c := range n.children {
		if c != nil {
			return true
		}
	}
	return false
}

type Trie struct {
	root      *node
	wordCount int
}

func New() *Trie {
	return &Trie{root: &node{}}
}

func indexOf(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

func validWord(word string) bool {
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if indexOf(word[i]) < 0 {
			return false
		}
	}
	return true
}

// Insert adds word and reports whether it was new. Empty or non a-z words
// are rejected.
func (t *Trie) Insert(word string) bool {
	if !validWord(word) {
		return false
	}

	cur := t.root
	for i := 0; i < len(word); i++ {
		idx := indexOf(word[i])
		if cur.children[idx] == nil {
			cur.children[idx] = &node{}
		}
		cur = cur.children[idx]
	}
	if cur.isEnd {
		return false
	}
	cur.isEnd = true
	t.wordCount++

	// Bump prefix counts only for genuinely new words so CountPrefix counts
	// distinct words, not insert calls.
	cur = t.root
	for i := 0; i < len(word); i++ {
		cur = cur.children[indexOf(word[i])]
		cur.prefixCount++
	}
	return true
}

// walk descends along s and returns the final node, or nil.
func (t *Trie) walk(s string) *node {
	cur := t.root
	for i := 0; i < len(s); i++ {
		idx := indexOf(s[i])
		if idx < 0 || cur.children[idx] == nil {
			return nil
		}
		cur = cur.children[idx]
	}
	return cur
}

// Search reports whether word was inserted exactly.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)
	return n != nil && n.isEnd
}

// StartsWith reports whether any stored word begins with prefix.
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// CountPrefix returns how many stored words begin with prefix.
func (t *Trie) CountPrefix(prefix string) int {
	if len(prefix) == 0 {
		return t.wordCount
	}
	n := t.walk(prefix)
	if n == nil {
		return 0
	}
	return n.prefixCount
}

// Delete removes word, pruning nodes that no longer lead anywhere.
func (t *Trie) Delete(word string) bool {
	if !validWord(word) {
		return false
	}
	deleted := false
	t.deleteRec(t.root, word, 0, &deleted)
	if deleted {
		t.wordCount--
	}
	return deleted
}

// deleteRec reports whether the child at this step should be unlinked.
func (t *Trie) deleteRec(n *node, word string, depth int, deleted *bool) bool {
	if depth == len(word) {
		if !n.isEnd {
			return false
		}
		n.isEnd = false
		*deleted = true
		return !n.hasChildren()
	}

	idx := indexOf(word[depth])
	child := n.children[idx]
	if child == nil {
		return false
	}

	prune := t.deleteRec(child, word, depth+1, deleted)
	if *deleted {
		child.prefixCount--
	}
	if prune {
		n.children[idx] = nil
		return !n.isEnd && !n.hasChildren() && n != t.root
	}
	return false
}

func (t *Trie) WordCount() int { return t.wordCount }

func (t *Trie) IsEmpty() bool { return t.wordCount == 0 }

func (t *Trie) Clear() {
	t.root = &node{}
	t.wordCount = 0
}

// Words returns every stored word in lexicographic order.
func (t *Trie) Words() []string {
	out := make([]string, 0, t.wordCount)
	collect(t.root, nil, &out)
	return out
}

// Autocomplete returns every stored word beginning with prefix, in
// lexicographic order.
func (t *Trie) Autocomplete(prefix string) []string {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, []byte(prefix), &out)
	return out
}

func collect(n *node, prefix []byte, out *[]string) {
	if n.isEnd {
		*out = append(*out, string(prefix))
	}
	for i, c := range n.children {
		if c != nil {
			collect(c, append(prefix, byte('a'+i)), out)
		}
	}
}

// LongestCommonPrefix returns the longest prefix shared by every stored
// word.
func (t *Trie) LongestCommonPrefix() string {
	if t.wordCount == 0 {
		return ""
	}
	var prefix []byte
	cur := t.root
	for {
		if cur.isEnd {
			break
		}
		next := -1
		for i, c := range cur.children {
			if c != nil {
				if next != -1 {
					return string(prefix)
				}
				next = i
			}
		}
		if next == -1 {
			break
		}
		prefix = append(prefix, byte('a'+next))
		cur = cur.children[next]
	}
	return string(prefix)
}

// SearchWildcard matches pattern against stored words, where '.' matches
// any single letter.
func (t *Trie) SearchWildcard(pattern string) bool {
	return wildcardRec(t.root, pattern, 0)
}

func wildcardRec(n *node, pattern string, depth int) bool {
	if depth == len(pattern) {
		return n.isEnd
	}
	c := pattern[depth]
	if c == '.' {
		for _, child := range n.children {
			if child != nil && wildcardRec(child, pattern, depth+1) {
				return true
			}
		}
		return false
	}
	idx := indexOf(c)
	if idx < 0 || n.children[idx] == nil {
		return false
	}
	return wildcardRec(n.children[idx], pattern, depth+1)
}

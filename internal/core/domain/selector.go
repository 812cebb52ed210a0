package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// SelectorKind is the textual discriminator of a Selector.
type SelectorKind string

const (
	// KindBranch selects the tip of a branch.
	KindBranch SelectorKind = "branch"
	// KindTag selects a tag.
	KindTag SelectorKind = "tag"
	// KindCommit selects a commit by hash.
	KindCommit SelectorKind = "commit"
	// KindPullRequest selects the head commit of a pull request.
	KindPullRequest SelectorKind = "pull-request"
	// KindLocal selects a directory on the local filesystem.
	KindLocal SelectorKind = "local"
)

// Selector chooses which version of the target data is resolved.
//
// The set of implementations is closed: Branch, Tag, Commit, PullRequest and LocalPath.
type Selector interface {
	// Kind returns the discriminator of the selector.
	Kind() SelectorKind
	// Ref returns the payload of the selector (name, hash or path).
	Ref() string
	// Validate reports ErrInvalidRequest when the payload is missing or malformed.
	Validate() error

	isSelector()
}

// Branch selects the tip of the named branch.
type Branch struct {
	Name string
}

// Tag selects the named tag.
type Tag struct {
	Name string
}

// Commit selects a commit by its hash.
type Commit struct {
	Hash string
}

// PullRequest selects a pull request through its head commit.
// An empty HeadCommitHash means the head commit is absent.
type PullRequest struct {
	HeadCommitHash string
}

// LocalPath selects a checkout that already exists on disk.
type LocalPath struct {
	Path string
}

func (Branch) isSelector()      {}
func (Tag) isSelector()         {}
func (Commit) isSelector()      {}
func (PullRequest) isSelector() {}
func (LocalPath) isSelector()   {}

// Kind implements Selector.
func (Branch) Kind() SelectorKind { return KindBranch }

// Kind implements Selector.
func (Tag) Kind() SelectorKind { return KindTag }

// Kind implements Selector.
func (Commit) Kind() SelectorKind { return KindCommit }

// Kind implements Selector.
func (PullRequest) Kind() SelectorKind { return KindPullRequest }

// Kind implements Selector.
func (LocalPath) Kind() SelectorKind { return KindLocal }

// Ref implements Selector.
func (s Branch) Ref() string { return s.Name }

// Ref implements Selector.
func (s Tag) Ref() string { return s.Name }

// Ref implements Selector.
func (s Commit) Ref() string { return s.Hash }

// Ref implements Selector.
func (s PullRequest) Ref() string { return s.HeadCommitHash }

// Ref implements Selector.
func (s LocalPath) Ref() string { return s.Path }

// Validate implements Selector.
func (s Branch) Validate() error { return requirePayload(s, "branch name") }

// Validate implements Selector.
func (s Tag) Validate() error { return requirePayload(s, "tag name") }

// Validate implements Selector. The hash may be abbreviated but must be hexadecimal.
func (s Commit) Validate() error { return requireHash(s, "commit hash") }

// Validate implements Selector. The hash may be abbreviated but must be hexadecimal.
func (s PullRequest) Validate() error { return requireHash(s, "pull request head commit hash") }

// Validate implements Selector.
func (s LocalPath) Validate() error { return requirePayload(s, "local path") }

func requirePayload(s Selector, field string) error {
	if s.Ref() != "" {
		return nil
	}
	err := zerr.Wrap(ErrInvalidRequest, field+" is required")
	return zerr.With(err, "kind", string(s.Kind()))
}

func requireHash(s Selector, field string) error {
	if err := requirePayload(s, field); err != nil {
		return err
	}
	if !IsHexHash(s.Ref()) {
		err := zerr.Wrap(ErrInvalidRequest, field+" "+strconv.Quote(s.Ref())+" is not hexadecimal")
		return zerr.With(err, "kind", string(s.Kind()))
	}
	return nil
}

// IsHexHash reports whether ref is a non-empty run of at most 64 hexadecimal digits.
func IsHexHash(ref string) bool {
	if ref == "" || len(ref) > 64 {
		return false
	}
	for _, c := range ref {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// DerefSelector returns the value variant behind a pointer selector.
// Variants have value receivers, so *Branch and friends also satisfy Selector;
// callers dispatch on value types only. A nil pointer yields nil.
func DerefSelector(sel Selector) Selector {
	switch s := sel.(type) {
	case *Branch:
		return derefOrNil(s)
	case *Tag:
		return derefOrNil(s)
	case *Commit:
		return derefOrNil(s)
	case *PullRequest:
		return derefOrNil(s)
	case *LocalPath:
		return derefOrNil(s)
	default:
		return sel
	}
}

func derefOrNil[T Selector](p *T) Selector {
	if p == nil {
		return nil
	}
	return *p
}

// SelectorString renders a selector as "<kind>:<ref>".
func SelectorString(s Selector) string {
	s = DerefSelector(s)
	if s == nil {
		return "<nil>"
	}
	return string(s.Kind()) + ":" + s.Ref()
}

// ParseSelector builds a selector from its textual kind and payload.
// The payload is not validated; call Validate on the result.
func ParseSelector(kind, value string) (Selector, error) {
	switch SelectorKind(kind) {
	case KindBranch:
		return Branch{Name: value}, nil
	case KindTag:
		return Tag{Name: value}, nil
	case KindCommit:
		return Commit{Hash: value}, nil
	case KindPullRequest:
		return PullRequest{HeadCommitHash: value}, nil
	case KindLocal:
		return LocalPath{Path: value}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnsupportedSource, strconv.Quote(kind)), "kind", kind)
	}
}

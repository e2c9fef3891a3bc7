package card

import "strings"

// Hand is a player's hand. It is an ordered multiset: two equal cards in a
// hand are still two separate instances, addressed by index.
type Hand []Card

// HandFromString creates a hand from compact notation, e.g. "RC1 GS2".
func HandFromString(s string) (Hand, error) {
	cards, err := ListFromString(s)
	if err != nil {
		return nil, err
	}
	return Hand(cards), nil
}

// String returns a user-visible version of this hand.
func (h Hand) String() string {
	strs := make([]string, len(h))
	for i, c := range h {
		strs[i] = c.String()
	}
	return strings.Join(strs, " ")
}

// Copy returns an independent copy of the hand.
func (h Hand) Copy() Hand {
	if h == nil {
		return nil
	}
	n := make(Hand, len(h))
	copy(n, h)
	return n
}

// Without returns a new hand with the instance at idx removed. The receiver
// is left untouched.
func (h Hand) Without(idx int) Hand {
	n := make(Hand, 0, len(h)-1)
	n = append(n, h[:idx]...)
	return append(n, h[idx+1:]...)
}

// Index returns the index of the first instance equal to c, or -1.
func (h Hand) Index(c Card) int {
	for i := range h {
		if h[i] == c {
			return i
		}
	}
	return -1
}

// Remove removes one instance of each given card. It returns false, and
// leaves the hand as it was, if any of them is missing.
func (h *Hand) Remove(cards []Card) bool {
	n := h.Copy()
	for _, c := range cards {
		idx := n.Index(c)
		if idx < 0 {
			return false
		}
		n = n.Without(idx)
	}
	*h = n
	return true
}

// Contains returns true if every given card can be matched against a
// distinct instance in the hand.
func (h Hand) Contains(cards []Card) bool {
	n := h.Copy()
	return n.Remove(cards)
}

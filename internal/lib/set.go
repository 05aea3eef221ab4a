package lib

import "github.com/ethereum/go-ethereum/common"

// AddrSet is a set of ethereum addresses
type AddrSet map[common.Address]struct{}

func NewAddrSet() AddrSet {
	return make(AddrSet)
}

func NewAddrSetFromSlice(slice []common.Address) AddrSet {
	s := make(AddrSet)
	for _, v := range slice {
		s[v] = struct{}{}
	}
	return s
}

func (s AddrSet) Add(value ...common.Address) {
	for _, v := range value {
		s[v] = struct{}{}
	}
}

func (s AddrSet) Remove(value common.Address) bool {
	_, c := s[value]
	delete(s, value)
	return c
}

func (s AddrSet) Contains(value common.Address) bool {
	_, c := s[value]
	return c
}

func (s AddrSet) Len() int {
	return len(s)
}

func (s AddrSet) ToSlice() []common.Address {
	var keys []common.Address
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

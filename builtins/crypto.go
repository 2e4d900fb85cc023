package builtins

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"

	"nyalang/types"
)

// getHasher returns a hash.Hash for the given algorithm name
func getHasher(algo string) (hash.Hash, bool) {
	switch strings.ToLower(algo) {
	case "md4":
		return md4.New(), true
	case "md5":
		return md5.New(), true
	case "sha1":
		return sha1.New(), true
	case "sha224":
		return sha256.New224(), true
	case "sha256", "":
		return sha256.New(), true
	case "sha384":
		return sha512.New384(), true
	case "sha512":
		return sha512.New(), true
	case "ripemd160":
		return ripemd160.New(), true
	default:
		return nil, false
	}
}

// builtinHash hashes the text form of a value with the named algorithm
// $Hash(algo, v) -> lowercase hex string
func builtinHash(ctx *types.TaskContext, args []types.Value) types.Result {
	if r, ok := checkArgs("Hash", args, 2); !ok {
		return r
	}

	algo, ok := args[0].(types.StrValue)
	if !ok {
		return types.Errf(types.E_TYPE, "In static method [$Hash]: algorithm name of type [%s] is not a string.", args[0].Type())
	}

	hasher, ok := getHasher(algo.Value())
	if !ok {
		return types.Errf(types.E_NATIVE, "In static method [$Hash]: unknown algorithm [%s].", algo.Value())
	}

	hasher.Write([]byte(types.ToText(args[1])))
	return types.Ok(types.NewStr(hex.EncodeToString(hasher.Sum(nil))))
}

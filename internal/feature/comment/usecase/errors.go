package usecase

import "errors"

// ErrMovieNotFound はコメント対象の映画が存在しない場合に返されます。
var ErrMovieNotFound = errors.New("movie not found")

// Package s3table exposes csv objects stored in S3 (or any S3-compatible
// service) as tabular.Table values, so data landed in object storage can be
// audited without downloading it first.
//
// # Architecture
//
// Bucket wraps an S3Client (satisfied by *s3.Client, injectable for tests)
// for one bucket. Object returns a table whose every pass issues a fresh
// GetObject and streams the body through csvtable's reader, which is what
// satisfies the multi-pass contract: re-iterating a problems view
// re-fetches the object. S3 failures are classified into package sentinels
// before they reach the consumer.
//
// # Usage
//
//	var cfg s3table.Config
//	config.MustLoad(&cfg)
//
//	bucket, err := s3table.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//
//	tbl := bucket.Object(ctx, "exports/payments.csv", csvtable.WithComma(';'))
//	problems, err := validator.Validate(tbl, constraints, header)
//
// # Error Handling
//
//   - ErrObjectNotFound / ErrBucketNotFound – missing key or bucket.
//   - ErrAccessDenied – credential or policy problems.
//   - ErrServiceUnavailable – throttling, safe to retry later.
//   - ErrInvalidConfig / ErrFailedToLoadConfig – construction failures.
//
// # Performance Considerations
//
// Objects are streamed, never buffered whole; a consumer that stops a pass
// early closes the body and abandons the rest of the download.
package s3table

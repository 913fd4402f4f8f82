package api

import (
	"io"
	"mime/multipart"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

// formField is an ordered text field of a multipart form.
type formField struct {
	name, value string
}

// multipartBody streams a form through a pipe so file contents are never
// buffered whole. The returned reader must be consumed or closed.
func multipartBody(fields []formField, fileField string, files []Upload) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, fields, fileField, files))
	}()

	return pr, mw.FormDataContentType()
}

func writeForm(mw *multipart.Writer, fields []formField, fileField string, files []Upload) error {
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return err
		}
	}
	for _, u := range files {
		if err := writeFile(mw, fileField, u); err != nil {
			return err
		}
	}
	return mw.Close()
}

func writeFile(mw *multipart.Writer, field string, u Upload) error {
	part, err := mw.CreateFormFile(field, u.Name)
	if err != nil {
		return err
	}
	if u.Open == nil {
		return nil
	}
	rc, err := u.Open()
	if err != nil {
		return errors.NewFileError("open", u.Name, err)
	}
	defer rc.Close()

	if _, err := util.Copy(part, rc); err != nil {
		return errors.NewFileError("read", u.Name, err)
	}
	return nil
}

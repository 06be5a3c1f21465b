package grpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/guardianos/guardian-sync/internal/proto"
	"github.com/guardianos/guardian-sync/internal/server/models"
	"github.com/guardianos/guardian-sync/internal/server/services"
)

// UploadFile consumes a client stream: the first message must carry the
// header, every following message one chunk. The declared size is checked
// before any chunk is read so oversized uploads fail fast.
func (s *GRPCServer) UploadFile(stream pb.FileService_UploadFileServer) error {

	ctx := stream.Context()
	accountID, err := accountFromContext(ctx)
	if err != nil {
		return err
	}

	first, err := stream.Recv()
	if err != nil {
		return status.Error(codes.InvalidArgument, "expected upload header")
	}
	header := first.GetHeader()
	if header == nil {
		return status.Error(codes.InvalidArgument, "first message must carry the header")
	}

	if err := s.files.CheckUploadSize(header.Size); err != nil {
		return statusFromError(err)
	}

	var buf bytes.Buffer
	if len(first.Chunk) > 0 {
		buf.Write(first.Chunk)
	}
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		buf.Write(msg.Chunk)
		if err := s.files.CheckUploadSize(int64(buf.Len())); err != nil {
			return statusFromError(err)
		}
	}

	meta := &models.FileRecord{
		Filename:    header.Filename,
		FileType:    fileTypeToString(header.FileType),
		ContentType: header.ContentType,
		Checksum:    header.ChecksumSha256,
	}
	record, err := s.files.Upload(ctx, accountID, deviceFromContext(ctx), meta, buf.Bytes())
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return statusFromError(err)
	}

	s.logger.Info(ctx, "File uploaded", "file", record.ID, "size", record.Size)
	return stream.SendAndClose(&pb.UploadFileResponse{
		FileId:      record.ID,
		StoragePath: record.StoragePath,
		UploadedAt:  time.Now().Unix(),
	})
}

// DownloadFile streams the metadata first, then the body in fixed-size chunks.
func (s *GRPCServer) DownloadFile(req *pb.DownloadFileRequest, stream pb.FileService_DownloadFileServer) error {

	ctx := stream.Context()
	accountID, err := accountFromContext(ctx)
	if err != nil {
		return err
	}

	record, body, err := s.files.Download(ctx, accountID, req.FileId)
	if err != nil {
		return statusFromError(err)
	}
	defer body.Close()

	if err := stream.Send(&pb.DownloadFileResponse{Metadata: fileMetadataToProto(record)}); err != nil {
		return err
	}

	chunk := make([]byte, s.chunkSize)
	for {
		n, err := body.Read(chunk)
		if n > 0 {
			// Send may retain the message, so every chunk gets its own slice
			// instead of a window into the reused read buffer.
			out := make([]byte, n)
			copy(out, chunk[:n])
			if err := stream.Send(&pb.DownloadFileResponse{Chunk: out}); err != nil {
				return err
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return statusFromError(err)
		}
	}
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	files, total, err := s.files.List(ctx, accountID, fileTypeToString(req.FileType), req.Limit, req.Offset)
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &pb.ListFilesResponse{TotalCount: int32(total)}
	for _, f := range files {
		resp.Files = append(resp.Files, fileMetadataToProto(f))
	}
	return resp, nil
}

func (s *GRPCServer) GetFileMetadata(ctx context.Context, req *pb.GetFileMetadataRequest) (*pb.FileMetadata, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	record, err := s.files.GetMetadata(ctx, accountID, req.FileId)
	if err != nil {
		return nil, statusFromError(err)
	}
	return fileMetadataToProto(record), nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *pb.DeleteFileRequest) (*pb.DeleteFileResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.files.Delete(ctx, accountID, req.FileId); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}
	return &pb.DeleteFileResponse{Success: true}, nil
}

func (s *GRPCServer) GetPresignedUrl(ctx context.Context, req *pb.GetPresignedUrlRequest) (*pb.GetPresignedUrlResponse, error) {

	accountID, err := accountFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var operation, filename, fileType, contentType string
	switch req.Operation {
	case pb.UrlOperation_URL_OPERATION_UPLOAD:
		operation = services.URLOperationUpload
		if req.Header != nil {
			filename = req.Header.Filename
			fileType = fileTypeToString(req.Header.FileType)
			contentType = req.Header.ContentType
		}
	case pb.UrlOperation_URL_OPERATION_DOWNLOAD:
		operation = services.URLOperationDownload
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown url operation")
	}

	presigned, err := s.files.PresignURL(ctx, accountID, operation, req.FileId,
		filename, fileType, contentType, time.Duration(req.ExpiresInSeconds)*time.Second)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.GetPresignedUrlResponse{
		Url:       presigned.URL,
		FileId:    presigned.File.ID,
		ExpiresAt: presigned.ExpiresAt.Unix(),
	}, nil
}

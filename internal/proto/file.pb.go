package pb

// UploadFileRequest frames a client-streaming upload: the first message
// carries Header, every following message carries one Chunk.
type UploadFileRequest struct {
	Header *UploadFileHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Chunk  []byte            `protobuf:"bytes,2,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (x *UploadFileRequest) Reset()         { *x = UploadFileRequest{} }
func (x *UploadFileRequest) String() string { return messageString(x) }
func (*UploadFileRequest) ProtoMessage()    {}

func (x *UploadFileRequest) GetHeader() *UploadFileHeader {
	if x != nil {
		return x.Header
	}
	return nil
}

func (x *UploadFileRequest) GetChunk() []byte {
	if x != nil {
		return x.Chunk
	}
	return nil
}

type UploadFileHeader struct {
	Filename       string   `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	FileType       FileType `protobuf:"varint,2,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	ContentType    string   `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Size           int64    `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	ChecksumSha256 string   `protobuf:"bytes,5,opt,name=checksum_sha256,json=checksumSha256,proto3" json:"checksum_sha256,omitempty"`
}

func (x *UploadFileHeader) Reset()         { *x = UploadFileHeader{} }
func (x *UploadFileHeader) String() string { return messageString(x) }
func (*UploadFileHeader) ProtoMessage()    {}

func (x *UploadFileHeader) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadFileHeader) GetFileType() FileType {
	if x != nil {
		return x.FileType
	}
	return FileType_FILE_TYPE_UNSPECIFIED
}

func (x *UploadFileHeader) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadFileHeader) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *UploadFileHeader) GetChecksumSha256() string {
	if x != nil {
		return x.ChecksumSha256
	}
	return ""
}

type UploadFileResponse struct {
	FileId      string `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	StoragePath string `protobuf:"bytes,2,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	UploadedAt  int64  `protobuf:"varint,3,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
}

func (x *UploadFileResponse) Reset()         { *x = UploadFileResponse{} }
func (x *UploadFileResponse) String() string { return messageString(x) }
func (*UploadFileResponse) ProtoMessage()    {}

func (x *UploadFileResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *UploadFileResponse) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *UploadFileResponse) GetUploadedAt() int64 {
	if x != nil {
		return x.UploadedAt
	}
	return 0
}

type DownloadFileRequest struct {
	FileId string `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
}

func (x *DownloadFileRequest) Reset()         { *x = DownloadFileRequest{} }
func (x *DownloadFileRequest) String() string { return messageString(x) }
func (*DownloadFileRequest) ProtoMessage()    {}

func (x *DownloadFileRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

// DownloadFileResponse frames a server-streaming download: the first message
// carries Metadata, every following message carries one Chunk.
type DownloadFileResponse struct {
	Metadata *FileMetadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Chunk    []byte        `protobuf:"bytes,2,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (x *DownloadFileResponse) Reset()         { *x = DownloadFileResponse{} }
func (x *DownloadFileResponse) String() string { return messageString(x) }
func (*DownloadFileResponse) ProtoMessage()    {}

func (x *DownloadFileResponse) GetMetadata() *FileMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *DownloadFileResponse) GetChunk() []byte {
	if x != nil {
		return x.Chunk
	}
	return nil
}

type FileMetadata struct {
	FileId         string   `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Filename       string   `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	FileType       FileType `protobuf:"varint,3,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	Size           int64    `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	ContentType    string   `protobuf:"bytes,5,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	ChecksumSha256 string   `protobuf:"bytes,6,opt,name=checksum_sha256,json=checksumSha256,proto3" json:"checksum_sha256,omitempty"`
	CreatedAt      int64    `protobuf:"varint,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      int64    `protobuf:"varint,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (x *FileMetadata) Reset()         { *x = FileMetadata{} }
func (x *FileMetadata) String() string { return messageString(x) }
func (*FileMetadata) ProtoMessage()    {}

func (x *FileMetadata) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *FileMetadata) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *FileMetadata) GetFileType() FileType {
	if x != nil {
		return x.FileType
	}
	return FileType_FILE_TYPE_UNSPECIFIED
}

func (x *FileMetadata) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *FileMetadata) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *FileMetadata) GetChecksumSha256() string {
	if x != nil {
		return x.ChecksumSha256
	}
	return ""
}

func (x *FileMetadata) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *FileMetadata) GetUpdatedAt() int64 {
	if x != nil {
		return x.UpdatedAt
	}
	return 0
}

type ListFilesRequest struct {
	FileType FileType `protobuf:"varint,1,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	Limit    int32    `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset   int32    `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
}

func (x *ListFilesRequest) Reset()         { *x = ListFilesRequest{} }
func (x *ListFilesRequest) String() string { return messageString(x) }
func (*ListFilesRequest) ProtoMessage()    {}

func (x *ListFilesRequest) GetFileType() FileType {
	if x != nil {
		return x.FileType
	}
	return FileType_FILE_TYPE_UNSPECIFIED
}

func (x *ListFilesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListFilesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListFilesResponse struct {
	Files      []*FileMetadata `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	NextCursor string          `protobuf:"bytes,2,opt,name=next_cursor,json=nextCursor,proto3" json:"next_cursor,omitempty"`
	TotalCount int32           `protobuf:"varint,3,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
}

func (x *ListFilesResponse) Reset()         { *x = ListFilesResponse{} }
func (x *ListFilesResponse) String() string { return messageString(x) }
func (*ListFilesResponse) ProtoMessage()    {}

func (x *ListFilesResponse) GetFiles() []*FileMetadata {
	if x != nil {
		return x.Files
	}
	return nil
}

func (x *ListFilesResponse) GetNextCursor() string {
	if x != nil {
		return x.NextCursor
	}
	return ""
}

func (x *ListFilesResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type GetFileMetadataRequest struct {
	FileId string `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
}

func (x *GetFileMetadataRequest) Reset()         { *x = GetFileMetadataRequest{} }
func (x *GetFileMetadataRequest) String() string { return messageString(x) }
func (*GetFileMetadataRequest) ProtoMessage()    {}

func (x *GetFileMetadataRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type DeleteFileRequest struct {
	FileId string `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
}

func (x *DeleteFileRequest) Reset()         { *x = DeleteFileRequest{} }
func (x *DeleteFileRequest) String() string { return messageString(x) }
func (*DeleteFileRequest) ProtoMessage()    {}

func (x *DeleteFileRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type DeleteFileResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *DeleteFileResponse) Reset()         { *x = DeleteFileResponse{} }
func (x *DeleteFileResponse) String() string { return messageString(x) }
func (*DeleteFileResponse) ProtoMessage()    {}

func (x *DeleteFileResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetPresignedUrlRequest struct {
	Operation        UrlOperation      `protobuf:"varint,1,opt,name=operation,proto3" json:"operation,omitempty"`
	FileId           string            `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Header           *UploadFileHeader `protobuf:"bytes,3,opt,name=header,proto3" json:"header,omitempty"`
	ExpiresInSeconds int64             `protobuf:"varint,4,opt,name=expires_in_seconds,json=expiresInSeconds,proto3" json:"expires_in_seconds,omitempty"`
}

func (x *GetPresignedUrlRequest) Reset()         { *x = GetPresignedUrlRequest{} }
func (x *GetPresignedUrlRequest) String() string { return messageString(x) }
func (*GetPresignedUrlRequest) ProtoMessage()    {}

func (x *GetPresignedUrlRequest) GetOperation() UrlOperation {
	if x != nil {
		return x.Operation
	}
	return UrlOperation_URL_OPERATION_UNSPECIFIED
}

func (x *GetPresignedUrlRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetPresignedUrlRequest) GetHeader() *UploadFileHeader {
	if x != nil {
		return x.Header
	}
	return nil
}

func (x *GetPresignedUrlRequest) GetExpiresInSeconds() int64 {
	if x != nil {
		return x.ExpiresInSeconds
	}
	return 0
}

type GetPresignedUrlResponse struct {
	Url       string `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	FileId    string `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ExpiresAt int64  `protobuf:"varint,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
}

func (x *GetPresignedUrlResponse) Reset()         { *x = GetPresignedUrlResponse{} }
func (x *GetPresignedUrlResponse) String() string { return messageString(x) }
func (*GetPresignedUrlResponse) ProtoMessage()    {}

func (x *GetPresignedUrlResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *GetPresignedUrlResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *GetPresignedUrlResponse) GetExpiresAt() int64 {
	if x != nil {
		return x.ExpiresAt
	}
	return 0
}

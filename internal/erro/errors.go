package erro

const PhotoServiceUnavalaible = "Photo-Service is unavailable"
const RequestTimedOut = "Request timed out"
const ClientErrorType = "Client"
const ServerErrorType = "Server"
const UpdateSomeoneMarathon = "Attempt to update someone else's marathon"
const RequiredUserID = "Required User-ID"
const TooManyRequests = "Too Many Requests"
const InvalidMultipart = "Invalid multipart form"
const InvalidJSON = "Invalid JSON body"
const InvalidPageNumber = "Page and page size must be integers"
const InvalidUserIDFormat = "Invalid userID format in request"
const InvalidMarathonIDFormat = "Invalid marathonID format in request"
const NonExistentData = "A non-existent data has been entered"
const ContextCanceled = "Context canceled or timeout"
const LargeFile = "File too large"
const EmptyFile = "No file or empty file has been sent"
const InvalidFileType = "Invalid file type - allowed png, jpg, jpeg, gif"
const StorageError = "Failed to store the photo"
const PersistenceError = "Failed to store the photo data"
const SearchUnavailable = "Photo search is unavailable"
const InvalidPagination = "Page and page size must be positive integers"
const InvalidEventDate = "Event date must have the format YYYY-MM-DD"
const RequiredMarathonFields = "Name, event date and location are required"
const ErrorAfterReqPhotos = "Error after request into photos: %v"
const ErrorAfterReqMarathons = "Error after request into marathons: %v"
const ErrorSetSearch = "Set search-cache error: %v"
const ErrorGetSearch = "Get search-cache error: %v"
const ErrorDelSearch = "Del search-cache error: %v"
const ErrorMarshal = "Data marshal error: %v"
const ErrorUnmarshal = "Data unmarshal error: %v"
const ErrorScan = "Scan error: %v"
const ErrorOverflowTaskQ = "Task queue is full, task has been dropped"

type CustomError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType}
}
func ClientError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType}
}

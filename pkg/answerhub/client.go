package answerhub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// apiPrefix is the fixed path prefix of the platform's v2 REST API. Every
// request goes to baseURL + apiPrefix + path.
const apiPrefix = "services/v2/"

// defaultSort is the sort applied to list calls when none is given. Sort
// values are platform-defined and forwarded verbatim without validation.
const defaultSort = "active"

// Client performs HTTP requests against an AnswerHub instance. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	authorization string
}

// NewClient creates a Client for the platform at baseURL, authenticating
// every request with HTTP Basic auth derived from username and password.
// The base URL is normalized to carry exactly one trailing slash. No network
// activity occurs at construction time.
//
// The underlying http.Client carries no explicit timeout; a request either
// completes or the transport's own defaults apply. Cancellation is available
// per call through the context.
func NewClient(baseURL, username, password string) *Client {
	return NewClientWithHTTPClient(baseURL, username, password, &http.Client{})
}

// NewClientWithHTTPClient is like NewClient but issues requests through the
// given http.Client, allowing callers to inject an instrumented or otherwise
// customized transport.
func NewClientWithHTTPClient(baseURL, username, password string, httpClient *http.Client) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	credential := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	return &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		authorization: "Basic " + credential,
	}
}

// ListQuestions fetches one page of questions. A page below 1 is treated as
// the first page; an empty sort falls back to "active".
func (c *Client) ListQuestions(ctx context.Context, page int, sort string) (*NodeList[Question], error) {
	var list NodeList[Question]
	if err := c.do(ctx, listPath("question", page, sort), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListAnswers fetches one page of answers.
func (c *Client) ListAnswers(ctx context.Context, page int, sort string) (*NodeList[Answer], error) {
	var list NodeList[Answer]
	if err := c.do(ctx, listPath("answer", page, sort), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListComments fetches one page of comments.
func (c *Client) ListComments(ctx context.Context, page int, sort string) (*NodeList[Comment], error) {
	var list NodeList[Comment]
	if err := c.do(ctx, listPath("comment", page, sort), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetQuestion fetches a single question by ID.
func (c *Client) GetQuestion(ctx context.Context, id int) (*Question, error) {
	var q Question
	if err := c.do(ctx, fmt.Sprintf("question/%d.json", id), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// GetAnswer fetches a single answer by ID.
func (c *Client) GetAnswer(ctx context.Context, id int) (*Answer, error) {
	var a Answer
	if err := c.do(ctx, fmt.Sprintf("answer/%d.json", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetComment fetches a single comment by ID.
func (c *Client) GetComment(ctx context.Context, id int) (*Comment, error) {
	var cm Comment
	if err := c.do(ctx, fmt.Sprintf("comment/%d.json", id), &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

// GetArticle fetches a single article by ID. Articles share the Node shape
// but are never one of the three list-endpoint kinds.
func (c *Client) GetArticle(ctx context.Context, id int) (*Article, error) {
	var art Article
	if err := c.do(ctx, fmt.Sprintf("article/%d.json", id), &art); err != nil {
		return nil, err
	}
	return &art, nil
}

// listPath builds the path fragment for a list endpoint, applying the
// page and sort defaults.
func listPath(endpoint string, page int, sort string) string {
	if page < 1 {
		page = 1
	}
	if sort == "" {
		sort = defaultSort
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("sort", sort)

	return endpoint + ".json?" + q.Encode()
}

// do issues one request for the given path fragment and decodes the JSON
// response into out.
//
// The platform expects POST for every operation, reads included. Redirects
// are followed transparently by the http.Client defaults.
func (c *Client) do(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, nil)
	if err != nil {
		return &TransportError{Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authorization)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UnexpectedStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &MalformedResponseError{Err: err}
	}

	return nil
}
